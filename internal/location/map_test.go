// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import (
	"testing"

	"github.com/biogo/biogo/feat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(29, [2]int{15, 25})
	require.NoError(t, err)
	assert.Equal(t, 10, m.Len())
	assert.Equal(t, 29, m.ParentLength())
	assert.True(t, m.Complete())
	assert.True(t, m.Useful())
	assert.Equal(t, "[15:25]/29", m.String())

	m, err = New(29, [2]int{25, 15})
	require.NoError(t, err)
	assert.True(t, m.IsReversed())
	assert.Equal(t, feat.Reverse, m.Orientation())
}

func TestNew_Overhang(t *testing.T) {
	m, err := New(10, [2]int{-2, 4}, [2]int{8, 13})
	require.NoError(t, err)
	assert.Equal(t, []Span{Gap(2), {Start: 0, End: 4}, {Start: 8, End: 10}, Gap(3)}, m.Spans())
	assert.Equal(t, 11, m.Len())
	assert.Equal(t, 6, m.NonGapLen())
	assert.False(t, m.Complete())

	// reversed intervals are traversed from their high end
	m, err = New(10, [2]int{13, 8})
	require.NoError(t, err)
	assert.Equal(t, []Span{Gap(3), {Start: 8, End: 10, Reverse: true}}, m.Spans())
}

func TestNew_OutOfBounds(t *testing.T) {
	_, err := New(10, [2]int{10, 15})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(10, [2]int{-5, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = FromSpans(10, Span{Start: 5, End: 11})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMap_Useful(t *testing.T) {
	assert.False(t, Empty(10).Useful())
	gapped, err := FromSpans(10, Gap(5))
	require.NoError(t, err)
	assert.False(t, gapped.Useful())
	assert.Equal(t, 5, gapped.Len())
}

func TestMap_Compose(t *testing.T) {
	cds := MustNew(29, [2]int{15, 25})
	got, err := cds.Compose(MustNew(10, [2]int{2, 6}))
	require.NoError(t, err)
	assert.Equal(t, "[17:21]/29", got.String())

	_, err = cds.Compose(MustNew(29, [2]int{2, 6}))
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestMap_Compose_ClipsAcrossSpans(t *testing.T) {
	exons := MustNew(100, [2]int{10, 20}, [2]int{40, 50})
	got, err := exons.Compose(MustNew(20, [2]int{5, 15}))
	require.NoError(t, err)
	assert.Equal(t, []Span{{Start: 15, End: 20}, {Start: 40, End: 45}}, got.Spans())
	assert.Equal(t, 10, got.Len())
}

func TestMap_Compose_PropagatesGaps(t *testing.T) {
	// an aligned sequence: columns 5..10 are gaps
	aligned, err := FromSpans(24, Span{Start: 0, End: 5}, Gap(5), Span{Start: 5, End: 24})
	require.NoError(t, err)

	got, err := aligned.Compose(MustNew(29, [2]int{2, 15}))
	require.NoError(t, err)
	assert.Equal(t, []Span{{Start: 2, End: 5}, Gap(5), {Start: 5, End: 10}}, got.Spans())
	assert.False(t, got.Complete())
	assert.Equal(t, 13, got.Len())
	assert.Equal(t, []Span{{Start: 2, End: 5}, {Start: 5, End: 10}}, got.Nongap().Spans())
}

func TestMap_Compose_Reverse(t *testing.T) {
	exons := MustNew(100, [2]int{10, 20}, [2]int{40, 50})
	got, err := exons.Compose(MustNew(20, [2]int{15, 5}))
	require.NoError(t, err)
	assert.Equal(t, []Span{{Start: 40, End: 45, Reverse: true}, {Start: 15, End: 20, Reverse: true}}, got.Spans())

	// a reversed parent span read forward yields reversed pieces
	rev := MustNew(100, [2]int{50, 40})
	got, err = rev.Compose(MustNew(10, [2]int{0, 3}))
	require.NoError(t, err)
	assert.Equal(t, []Span{{Start: 47, End: 50, Reverse: true}}, got.Spans())
}

func TestMap_Inverse(t *testing.T) {
	m := MustNew(30, [2]int{10, 20})
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, []Span{Gap(10), {Start: 0, End: 10}, Gap(10)}, inv.Spans())
	assert.Equal(t, 10, inv.ParentLength())
	assert.Equal(t, 30, inv.Len())

	back, err := inv.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Equal(back), "got %v", back)
}

func TestMap_Inverse_RoundTripCoversSameRegion(t *testing.T) {
	maps := []*Map{
		MustNew(100, [2]int{10, 20}, [2]int{40, 50}),
		MustNew(100, [2]int{40, 50}, [2]int{10, 20}),
		MustNew(100, [2]int{60, 30}),
		MustNew(10, [2]int{0, 10}),
	}
	for _, m := range maps {
		inv, err := m.Inverse()
		require.NoError(t, err)
		back, err := inv.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Covered().Equal(back.Covered()), "%v -> %v", m, back)
	}
}

func TestMap_Inverse_Overlapping(t *testing.T) {
	m := MustNew(30, [2]int{10, 20}, [2]int{15, 25})
	_, err := m.Inverse()
	assert.ErrorIs(t, err, ErrUninvertible)
}

func TestMap_Gaps(t *testing.T) {
	m, err := FromSpans(20, Span{Start: 0, End: 5}, Gap(3), Span{Start: 5, End: 10}, Gap(2))
	require.NoError(t, err)
	gaps := m.Gaps()
	assert.Equal(t, 15, gaps.ParentLength())
	assert.Equal(t, [][2]int{{5, 8}, {13, 15}}, gaps.Coordinates())
}

func TestMap_Shadow(t *testing.T) {
	m := MustNew(30, [2]int{10, 20}, [2]int{15, 25})
	assert.Equal(t, [][2]int{{0, 10}, {25, 30}}, m.Shadow().Coordinates())

	assert.Equal(t, [][2]int{{0, 30}}, Empty(30).Shadow().Coordinates())
}

func TestMap_Covered(t *testing.T) {
	m := MustNew(100, [2]int{40, 50}, [2]int{10, 20}, [2]int{15, 25}, [2]int{25, 30})
	assert.Equal(t, [][2]int{{10, 30}, {40, 50}}, m.Covered().Coordinates())
}

func TestMap_CoveringSpan(t *testing.T) {
	m := MustNew(100, [2]int{40, 50}, [2]int{10, 20})
	assert.Equal(t, [][2]int{{10, 50}}, m.CoveringSpan().Coordinates())

	rev := MustNew(100, [2]int{50, 40}, [2]int{20, 10})
	assert.True(t, rev.CoveringSpan().IsReversed())

	assert.False(t, Empty(10).CoveringSpan().Useful())
}

func TestMap_NucleicReversed(t *testing.T) {
	m := MustNew(100, [2]int{20, 30}, [2]int{40, 50})
	rc := m.NucleicReversed()
	assert.Equal(t, []Span{{Start: 70, End: 80, Reverse: true}, {Start: 50, End: 60, Reverse: true}}, rc.Spans())
	assert.True(t, m.Equal(rc.NucleicReversed()))
}

func TestMap_Reversed(t *testing.T) {
	m := MustNew(100, [2]int{20, 30}, [2]int{40, 50})
	assert.Equal(t, []Span{{Start: 40, End: 50, Reverse: true}, {Start: 20, End: 30, Reverse: true}}, m.Reversed().Spans())
}

func TestMap_Shifted(t *testing.T) {
	m := MustNew(10, [2]int{2, 4})
	got, err := m.Shifted(10, 30)
	require.NoError(t, err)
	assert.Equal(t, "[12:14]/30", got.String())

	_, err = m.Shifted(28, 29)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestConcat(t *testing.T) {
	got, err := Concat(MustNew(30, [2]int{0, 5}), MustNew(30, [2]int{10, 29}))
	require.NoError(t, err)
	assert.Equal(t, 24, got.Len())

	_, err = Concat(MustNew(30, [2]int{0, 5}), MustNew(31, [2]int{0, 5}))
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestMap_Bounds(t *testing.T) {
	m := MustNew(100, [2]int{40, 50}, [2]int{10, 20})
	assert.Equal(t, 10, m.Start())
	assert.Equal(t, 50, m.End())
	assert.True(t, m.OverlapsRange(45, 60))
	assert.False(t, m.OverlapsRange(20, 40))
}

func TestMapDoc_RoundTrip(t *testing.T) {
	m, err := FromSpans(30, Span{Start: 0, End: 5}, Gap(3), Span{Start: 10, End: 20, Reverse: true})
	require.NoError(t, err)

	doc := m.Doc()
	assert.Equal(t, 30, doc.ParentLength)
	assert.Equal(t, SpanDoc{Gap: 3}, doc.Spans[1])
	assert.Equal(t, "-", doc.Spans[2].Strand)

	back, err := FromDoc(doc)
	require.NoError(t, err)
	assert.True(t, m.Equal(back))

	_, err = FromDoc(MapDoc{ParentLength: 5, Spans: []SpanDoc{{Start: 0, End: 2, Strand: "x"}}})
	assert.Error(t, err)
}
