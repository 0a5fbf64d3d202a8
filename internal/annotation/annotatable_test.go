// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seqnote/internal/location"
)

func reversed(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func TestShiftedAnnotations(t *testing.T) {
	seq, _, _ := annotatedSample(t)
	tail := seq.slice(t, From(10))
	joined := newTextSeq(sampleSeq[:5] + tail.data)

	shifted, err := ShiftedAnnotations(tail, joined, 5)
	require.NoError(t, err)
	require.Len(t, shifted, 2)
	require.NoError(t, joined.Annotations().Attach(shifted...))

	assert.Equal(t, "[10:20]/24", shifted[0].Map().String())
	assert.Equal(t, "[7:10]/24", shifted[1].Map().String())

	got, err := shifted[0].GetSlice(true)
	require.NoError(t, err)
	assert.Equal(t, "GGGGGGGGGG", text(t, got))

	none, err := ShiftedAnnotations(newTextSeq("AC"), joined, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNucleicReversedOn(t *testing.T) {
	seq := newTextSeq(sampleSeq)
	f, err := AddFeature(seq, "motif", "m1", [2]int{3, 7})
	require.NoError(t, err)
	_, err = AddFeature(f, "site", "s1", [2]int{0, 2})
	require.NoError(t, err)

	rc := newTextSeq(reversed(sampleSeq))
	require.NoError(t, NucleicReversedOn(seq, rc))

	annots := rc.Annotations().All()
	require.Len(t, annots, 1)
	assert.Equal(t, "[22:26-]/29", annots[0].Map().String())
	assert.Equal(t, "motif", annots[0].Type())
	assert.Equal(t, 1, annots[0].Annotations().Len())

	// the reversed map still reads the same residues
	got, err := annots[0].GetSlice(true)
	require.NoError(t, err)
	assert.Equal(t, sampleSeq[3:7], text(t, got))

	back := newTextSeq(sampleSeq)
	require.NoError(t, NucleicReversedOn(rc, back))
	assert.True(t, back.Annotations().All()[0].Map().Equal(f.Map()))

	assert.ErrorIs(t, NucleicReversedOn(seq, newTextSeq("AC")), ErrLengthMismatch)
}

func TestCopyAll(t *testing.T) {
	seq, _, _ := annotatedSample(t)
	dst := newTextSeq(strings.ToLower(sampleSeq))

	require.NoError(t, CopyAll(seq, dst))
	assert.Equal(t, 2, dst.Annotations().Len())
	assert.Equal(t, 2, seq.Annotations().Len())

	got, err := dst.Annotations().All()[0].GetSlice(true)
	require.NoError(t, err)
	assert.Equal(t, "gggggggggg", text(t, got))
}

func TestRegionCoveringAll(t *testing.T) {
	seq, cds, utr := annotatedSample(t)
	blank, err := New(seq, Construction{Kind: KindPlain, Type: "misc", Name: "m", Map: location.Empty(29)})
	require.NoError(t, err)

	region, err := RegionCoveringAll(seq, []*Feature{cds, utr, blank}, false)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{12, 25}}, region.Coordinates())
	assert.Equal(t, "CDS,5'UTR", region.Type())
	assert.Equal(t, "cds1,utr1", region.Name())
	assert.Equal(t, KindPlain, region.Kind())
	assert.False(t, region.Attached())
}

func TestRegionCoveringAll_SubFeatures(t *testing.T) {
	seq := newTextSeq(sampleSeq)
	gene, err := AddFeature(seq, "gene", "g1", [2]int{10, 25})
	require.NoError(t, err)
	exon1, err := AddFeature(gene, "exon", "e1", [2]int{0, 2})
	require.NoError(t, err)
	exon2, err := AddFeature(gene, "exon", "e2", [2]int{4, 6})
	require.NoError(t, err)

	_, err = RegionCoveringAll(seq, []*Feature{exon1}, false)
	assert.ErrorIs(t, err, ErrAncestryMismatch)

	region, err := RegionCoveringAll(seq, []*Feature{exon1, exon2}, true)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{10, 12}, {14, 16}}, region.Coordinates())
	assert.Equal(t, "exon", region.Type())
	assert.Equal(t, "e1,e2", region.Name())
}
