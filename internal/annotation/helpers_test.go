// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seqnote/internal/location"
)

const sampleSeq = "AACCCAAAATTTTTTGGGGGGGGGGCCCC"

// textSeq is a minimal Container over a string.
type textSeq struct {
	data string
	set  *Set
}

func newTextSeq(data string) *textSeq {
	s := &textSeq{data: data}
	s.set = NewSet(s)
	return s
}

func (s *textSeq) Len() int          { return len(s.data) }
func (s *textSeq) Annotations() *Set { return s.set }

func (s *textSeq) SliceByMap(m *location.Map) (Container, error) {
	if m.ParentLength() != len(s.data) {
		return nil, fmt.Errorf("map on %d: %w", m.ParentLength(), ErrLengthMismatch)
	}
	var b strings.Builder
	for _, sp := range m.Spans() {
		switch {
		case sp.Lost:
			return nil, ErrRangeIncomplete
		case sp.Reverse:
			for i := sp.End - 1; i >= sp.Start; i-- {
				b.WriteByte(s.data[i])
			}
		default:
			b.WriteString(s.data[sp.Start:sp.End])
		}
	}
	ns := newTextSeq(b.String())
	if err := ns.set.Attach(SlicedAnnotations(s, ns, m)...); err != nil {
		return nil, err
	}
	return ns, nil
}

func (s *textSeq) slice(t *testing.T, idx Index) *textSeq {
	t.Helper()
	m, err := AsMap(s, idx)
	require.NoError(t, err)
	c, err := s.SliceByMap(m)
	require.NoError(t, err)
	return c.(*textSeq)
}

func text(t *testing.T, c Container) string {
	t.Helper()
	ts, ok := c.(*textSeq)
	require.True(t, ok, "unexpected container %T", c)
	return ts.data
}

// annotatedSample returns the sample sequence with a CDS at 15..25 and a
// 5' UTR at 12..15.
func annotatedSample(t *testing.T) (*textSeq, *Feature, *Feature) {
	t.Helper()
	seq := newTextSeq(sampleSeq)
	cds, err := AddFeature(seq, "CDS", "cds1", [2]int{15, 25})
	require.NoError(t, err)
	utr, err := AddFeature(seq, "5'UTR", "utr1", [2]int{12, 15})
	require.NoError(t, err)
	return seq, cds, utr
}
