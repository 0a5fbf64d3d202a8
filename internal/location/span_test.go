// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import (
	"testing"

	"github.com/biogo/biogo/feat"
	"github.com/stretchr/testify/assert"
)

func TestNewSpan_SwapsBounds(t *testing.T) {
	s := NewSpan(30, 20, false)
	assert.Equal(t, Span{Start: 20, End: 30, Reverse: true}, s)

	s = NewSpan(30, 20, true)
	assert.Equal(t, Span{Start: 20, End: 30}, s)
}

func TestSpan_ReversedRelativeTo(t *testing.T) {
	s := Span{Start: 20, End: 30}
	got := s.ReversedRelativeTo(100)
	assert.Equal(t, Span{Start: 70, End: 80, Reverse: true}, got)
	assert.Equal(t, s, got.ReversedRelativeTo(100))

	gap := Gap(4)
	assert.Equal(t, gap, gap.ReversedRelativeTo(100))
}

func TestSpan_Overlaps(t *testing.T) {
	s := Span{Start: 10, End: 20}
	assert.True(t, s.Overlaps(19, 25))
	assert.True(t, s.Overlaps(0, 11))
	assert.False(t, s.Overlaps(20, 25))
	assert.False(t, s.Overlaps(0, 10))
	assert.False(t, Gap(10).Overlaps(0, 10))
}

func TestSpan_Orientation(t *testing.T) {
	assert.Equal(t, feat.Forward, Span{Start: 1, End: 2}.Orientation())
	assert.Equal(t, feat.Reverse, Span{Start: 1, End: 2, Reverse: true}.Orientation())
	assert.Equal(t, feat.NotOriented, Gap(3).Orientation())
}

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "1:5", Span{Start: 1, End: 5}.String())
	assert.Equal(t, "1:5-", Span{Start: 1, End: 5, Reverse: true}.String())
	assert.Equal(t, "-3-", Gap(3).String())
}
