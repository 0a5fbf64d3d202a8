// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import (
	"fmt"

	"github.com/biogo/biogo/feat"
)

// Span is a half-open interval [Start, End) on the parent axis.
//
// Start <= End always holds. Reverse marks a span traversed from high to
// low. A Lost span is a gap of End-Start positions with no parent location.
type Span struct {
	Start   int
	End     int
	Reverse bool
	Lost    bool
}

// NewSpan returns the span between start and end. Bounds given high-to-low
// are swapped and the reverse flag is flipped.
func NewSpan(start, end int, reverse bool) Span {
	if start > end {
		start, end = end, start
		reverse = !reverse
	}
	return Span{Start: start, End: end, Reverse: reverse}
}

// Gap returns a lost span of the given length.
func Gap(length int) Span {
	if length < 0 {
		length = 0
	}
	return Span{Start: 0, End: length, Lost: true}
}

// Len returns the number of positions the span occupies in the child frame.
func (s Span) Len() int {
	return s.End - s.Start
}

// Reversed returns the span with its traversal direction flipped.
func (s Span) Reversed() Span {
	if s.Lost {
		return s
	}
	s.Reverse = !s.Reverse
	return s
}

// ReversedRelativeTo mirrors the span on an axis of the given length, as
// required when the parent sequence is reverse-complemented.
func (s Span) ReversedRelativeTo(length int) Span {
	if s.Lost {
		return s
	}
	return Span{
		Start:   length - s.End,
		End:     length - s.Start,
		Reverse: !s.Reverse,
	}
}

// Shifted moves a non-lost span by offset positions.
func (s Span) Shifted(offset int) Span {
	if s.Lost {
		return s
	}
	s.Start += offset
	s.End += offset
	return s
}

// Overlaps reports whether the span shares any parent position with [start, end).
func (s Span) Overlaps(start, end int) bool {
	if s.Lost {
		return false
	}
	return s.Start < end && start < s.End
}

// Orientation returns the span strand as a biogo orientation.
func (s Span) Orientation() feat.Orientation {
	switch {
	case s.Lost:
		return feat.NotOriented
	case s.Reverse:
		return feat.Reverse
	default:
		return feat.Forward
	}
}

func (s Span) String() string {
	if s.Lost {
		return fmt.Sprintf("-%d-", s.Len())
	}
	if s.Reverse {
		return fmt.Sprintf("%d:%d-", s.Start, s.End)
	}
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}
