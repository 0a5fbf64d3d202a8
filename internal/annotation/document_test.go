// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seqnote/internal/location"
)

func TestDocument_RoundTrip(t *testing.T) {
	seq := newTextSeq(sampleSeq)
	gene, err := AddFeature(seq, "gene", "g1", [2]int{10, 25})
	require.NoError(t, err)
	_, err = AddFeature(gene, "exon", "e1", [2]int{2, 5}, [2]int{9, 7})
	require.NoError(t, err)

	data, err := gene.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"annotatable_feature"`)
	assert.Contains(t, string(data), `"version":"1.0"`)

	dst := newTextSeq(sampleSeq)
	got, err := UnmarshalFeature(dst, data)
	require.NoError(t, err)
	assert.False(t, got.Attached())
	assert.Equal(t, "gene", got.Type())
	assert.Equal(t, "g1", got.Name())
	assert.True(t, got.Map().Equal(gene.Map()))

	subs := got.Annotations().All()
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Attached())
	assert.Equal(t, "[2:5, 7:9-]/15", subs[0].Map().String())
}

func TestDocument_Kinds(t *testing.T) {
	seq := newTextSeq(sampleSeq)
	src, err := NewSource(seq, location.MustNew(29, [2]int{0, 10}), "NC_001", location.MustNew(100, [2]int{60, 50}))
	require.NoError(t, err)
	v, err := NewVariable(seq, "score", "v1", []Point{{X1: 5, X2: 8, Y: 1.5}})
	require.NoError(t, err)
	gapped, err := location.FromSpans(29, location.Span{Start: 0, End: 2}, location.Gap(1))
	require.NoError(t, err)
	sv, err := New(seq, Construction{Kind: KindSimpleVariable, Type: "q", Map: gapped, Data: []float64{0.5, 1, 2}})
	require.NoError(t, err)

	for _, f := range []*Feature{src, v, sv} {
		t.Run(f.Kind().String(), func(t *testing.T) {
			data, err := f.MarshalJSON()
			require.NoError(t, err)
			got, err := UnmarshalFeature(seq, data)
			require.NoError(t, err)
			assert.Equal(t, f.Construction(), got.Construction())
		})
	}
}

func TestDocument_Errors(t *testing.T) {
	seq := newTextSeq(sampleSeq)

	_, err := UnmarshalFeature(seq, []byte("{"))
	assert.Error(t, err)

	_, err = UnmarshalFeature(seq, []byte(`{"type":"nope","version":"1.0","annotation_construction":{"map":{"parent_length":29,"spans":[]}}}`))
	assert.Error(t, err)

	_, err = UnmarshalFeature(seq, []byte(`{"type":"feature","version":"1.0","annotation_construction":{"map":{"parent_length":10,"spans":[]}}}`))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	plainWithSubs := `{"type":"feature","version":"1.0",
		"annotation_construction":{"type":"x","map":{"parent_length":29,"spans":[{"start":0,"end":4,"strand":"+"}]}},
		"annotations":[{"type":"feature","version":"1.0","annotation_construction":{"type":"y","map":{"parent_length":4,"spans":[]}}}]}`
	_, err = UnmarshalFeature(seq, []byte(plainWithSubs))
	assert.ErrorIs(t, err, ErrFeatureKind)
}
