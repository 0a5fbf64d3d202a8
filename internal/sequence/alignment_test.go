// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seqnote/internal/annotation"
)

const gappedSeq = "AACCC-----TTTTTGGGGGGGGGGCC--"

// alignment columns -> expected rows
var alnExpected = map[string]map[string]string{
	"misc_feature": {"FAKE01": "TTTGGGGGGGGGG", "FAKE02": "TTTGGGGGGGGGG"},
	"CDS":          {"FAKE01": "GGGGGGGGGG", "FAKE02": "GGGGGGGGGG"},
	"5'UTR":        {"FAKE01": "CC", "FAKE02": "CC"},
	"LTR":          {"FAKE01": "CCCAAAATTTTTT", "FAKE02": "CCC-----TTTTT"},
}

var seqExpected = map[string]string{"CDS": "GGGGGGGGGG", "5'UTR": "TTT"}

func sampleAlignment(t *testing.T) *Alignment {
	t.Helper()
	aln, err := FromGapped([]string{"FAKE01", "FAKE02"}, []string{sampleSeq, gappedSeq})
	require.NoError(t, err)

	seq1, err := aln.Row("FAKE01")
	require.NoError(t, err)
	_, err = seq1.Seq().AddFeature("CDS", "CDS", [2]int{15, 25})
	require.NoError(t, err)
	_, err = seq1.Seq().AddFeature("5'UTR", "5' UTR", [2]int{12, 15})
	require.NoError(t, err)

	// the same features on the ungapped second row
	seq2, err := aln.Row("FAKE02")
	require.NoError(t, err)
	_, err = seq2.Seq().AddFeature("CDS", "CDS", [2]int{10, 20})
	require.NoError(t, err)
	_, err = seq2.Seq().AddFeature("5'UTR", "5' UTR", [2]int{7, 10})
	require.NoError(t, err)

	for _, a := range []struct {
		bioType, name string
		span          [2]int
	}{
		{"misc_feature", "misc", [2]int{12, 25}},
		{"CDS", "blue", [2]int{15, 25}},
		{"5'UTR", "red", [2]int{2, 4}},
		{"LTR", "fake", [2]int{2, 15}},
	} {
		_, err := aln.AddFeature(a.bioType, a.name, a.span)
		require.NoError(t, err)
	}
	return aln
}

func alnByAnnotation(t *testing.T, a *Alignment, bioType string) *Alignment {
	t.Helper()
	alns, err := a.GetByAnnotation(bioType, "", false)
	require.NoError(t, err)
	require.Len(t, alns, 1)
	return alns[0]
}

func TestParseAligned(t *testing.T) {
	row := ParseAligned("FAKE02", gappedSeq)
	assert.Equal(t, "AACCCTTTTTGGGGGGGGGGCC", row.Seq().String())
	assert.Equal(t, "[0:5, -5-, 5:22, -2-]/22", row.Map().String())
	assert.Equal(t, 29, row.Len())
	assert.Equal(t, gappedSeq, row.String())
}

func TestParseAligned_EdgeRows(t *testing.T) {
	tests := []struct {
		name    string
		gapped  string
		wantMap string
	}{
		{name: "all gaps", gapped: "---", wantMap: "[-3-]/0"},
		{name: "empty", gapped: "", wantMap: "[]/0"},
		{name: "no gaps", gapped: "ACGT", wantMap: "[0:4]/4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row *Aligned
			require.NotPanics(t, func() { row = ParseAligned("r", tt.gapped) })
			assert.Equal(t, tt.wantMap, row.Map().String())
			assert.Equal(t, tt.gapped, row.String())
		})
	}
}

func TestAlignment_GetByAnnotation(t *testing.T) {
	aln := sampleAlignment(t)

	for bioType, want := range alnExpected {
		got := alnByAnnotation(t, aln, bioType)
		assert.Equal(t, want, got.ToMap(), bioType)
	}

	for bioType, want := range seqExpected {
		for _, name := range aln.Names() {
			row, err := aln.Row(name)
			require.NoError(t, err)
			got := byAnnotation(t, row.Seq(), bioType)
			assert.Equal(t, want, got.String(), "%s %s", name, bioType)
		}
	}
}

func TestAlignment_ProjectAnnotation(t *testing.T) {
	aln := sampleAlignment(t)
	ltrs, err := aln.Annotations().Matching("LTR", "", false)
	require.NoError(t, err)
	require.Len(t, ltrs, 1)

	onFirst, err := aln.ProjectAnnotation("FAKE01", ltrs[0])
	require.NoError(t, err)
	got, err := onFirst.GetSlice(true)
	require.NoError(t, err)
	assert.Equal(t, "CCCAAAATTTTTT", got.(*Sequence).String())

	onSecond, err := aln.ProjectAnnotation("FAKE02", ltrs[0])
	require.NoError(t, err)
	_, err = onSecond.GetSlice(true)
	assert.ErrorIs(t, err, annotation.ErrRangeIncomplete)

	trimmed, err := onSecond.WithoutLostSpans()
	require.NoError(t, err)
	got, err = trimmed.GetSlice(true)
	require.NoError(t, err)
	assert.Equal(t, "CCCTTTTT", got.(*Sequence).String())

	_, err = aln.ProjectAnnotation("FAKE03", ltrs[0])
	assert.ErrorIs(t, err, ErrUnknownSequence)

	other := sampleAlignment(t)
	_, err = other.ProjectAnnotation("FAKE01", ltrs[0])
	assert.ErrorIs(t, err, annotation.ErrAncestryMismatch)
}

func TestAlignment_SliceConcat(t *testing.T) {
	aln := sampleAlignment(t)
	head, err := aln.Slice(annotation.To(5))
	require.NoError(t, err)
	tail, err := aln.Slice(annotation.From(10))
	require.NoError(t, err)
	joined, err := head.Concat(tail)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"FAKE01": sampleSeq[:5] + sampleSeq[10:],
		"FAKE02": gappedSeq[:5] + gappedSeq[10:],
	}, joined.ToMap())

	want := map[string]map[string]string{
		"LTR":          {"FAKE01": "CCCTTTTT", "FAKE02": "CCCTTTTT"},
		"misc_feature": alnExpected["misc_feature"],
		"CDS":          alnExpected["CDS"],
		"5'UTR":        alnExpected["5'UTR"],
	}
	for bioType, expected := range want {
		features, err := joined.Annotations().Matching(bioType, "", false)
		require.NoError(t, err)
		region, err := annotation.RegionCoveringAll(joined, features, false)
		require.NoError(t, err)
		got, err := region.GetSlice(true)
		require.NoError(t, err)
		assert.Equal(t, expected, got.(*Alignment).ToMap(), bioType)
	}

	for bioType := range seqExpected {
		for _, name := range aln.Names() {
			orig, err := aln.AnnotationsFromSeq(name, bioType, "")
			require.NoError(t, err)
			require.Len(t, orig, 1)
			moved, err := joined.AnnotationsFromSeq(name, bioType, "")
			require.NoError(t, err)
			require.Len(t, moved, 1)

			a, err := orig[0].GetSlice(true)
			require.NoError(t, err)
			b, err := moved[0].GetSlice(true)
			require.NoError(t, err)
			assert.Equal(t, a.(*Alignment).ToMap(), b.(*Alignment).ToMap(), "%s %s", name, bioType)
		}
	}
}

func TestAlignment_ReverseComplement(t *testing.T) {
	aln := sampleAlignment(t)
	rc, err := aln.ReverseComplement()
	require.NoError(t, err)
	assert.Equal(t, "--GGCCCCCCCCCCAAAAA-----GGGTT", rc.ToMap()["FAKE02"])

	for bioType, want := range alnExpected {
		got := alnByAnnotation(t, rc, bioType)
		assert.Equal(t, want, got.ToMap(), bioType)
	}
	for bioType, want := range seqExpected {
		for _, name := range rc.Names() {
			row, err := rc.Row(name)
			require.NoError(t, err)
			got := byAnnotation(t, row.Seq(), bioType)
			assert.Equal(t, want, got.String(), "%s %s", name, bioType)
		}
	}

	back, err := rc.ReverseComplement()
	require.NoError(t, err)
	assert.Equal(t, aln.ToMap(), back.ToMap())
	for i, f := range back.Annotations().All() {
		assert.True(t, f.Map().Equal(aln.Annotations().All()[i].Map()), f.String())
	}
}

func TestAlignment_ConcatSeparateSequences(t *testing.T) {
	left, err := FromGapped([]string{"a", "b"}, []string{"AC-", "A-G"})
	require.NoError(t, err)
	right, err := FromGapped([]string{"a", "b"}, []string{"T", "-"})
	require.NoError(t, err)

	joined, err := left.Concat(right)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "AC-T", "b": "A-G-"}, joined.ToMap())

	renamed, err := FromGapped([]string{"a", "c"}, []string{"T", "-"})
	require.NoError(t, err)
	_, err = left.Concat(renamed)
	assert.ErrorIs(t, err, ErrUnknownSequence)
}

func TestAlignment_ShapeErrors(t *testing.T) {
	_, err := FromGapped([]string{"a", "b"}, []string{"ACGT", "AC"})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromGapped([]string{"a"}, []string{"ACGT", "ACGT"})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromGapped([]string{"a", "a"}, []string{"ACGT", "ACGT"})
	assert.ErrorIs(t, err, ErrShape)

	_, err = NewAlignment()
	assert.ErrorIs(t, err, ErrShape)

	_, err = NewAligned(New("x", "ACGT"), ParseAligned("y", "AC").Map())
	assert.ErrorIs(t, err, annotation.ErrLengthMismatch)
}
