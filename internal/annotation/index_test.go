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

func TestAsMap(t *testing.T) {
	seq := newTextSeq(sampleSeq)

	tests := []struct {
		name string
		idx  Index
		want string
	}{
		{name: "position", idx: At(3), want: "[3:4]/29"},
		{name: "negative position", idx: At(-1), want: "[28:29]/29"},
		{name: "range", idx: Between(2, 7), want: "[2:7]/29"},
		{name: "clamped range", idx: Between(-5, 100), want: "[24:29]/29"},
		{name: "reversed range", idx: Between(7, 2), want: "[2:7-]/29"},
		{name: "from", idx: From(-3), want: "[26:29]/29"},
		{name: "to", idx: To(4), want: "[0:4]/29"},
		{name: "map", idx: MapOf(location.MustNew(29, [2]int{1, 2})), want: "[1:2]/29"},
		{name: "many", idx: Many(Between(0, 2), At(5)), want: "[0:2, 5:6]/29"},
		{name: "none", idx: Many(), want: "[]/29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := AsMap(seq, tt.idx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestAsMap_Errors(t *testing.T) {
	seq := newTextSeq(sampleSeq)

	_, err := AsMap(seq, At(29))
	assert.ErrorIs(t, err, location.ErrOutOfBounds)

	_, err = AsMap(seq, At(-30))
	assert.ErrorIs(t, err, location.ErrOutOfBounds)

	_, err = AsMap(seq, MapOf(location.MustNew(10, [2]int{0, 5})))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = AsMap(seq, Many(Between(0, 2), At(40)))
	assert.ErrorIs(t, err, location.ErrOutOfBounds)
}
