// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biogo/biogo/feat"
)

// Map translates a child coordinate frame onto a parent frame.
type Map struct {
	spans        []Span
	offsets      []int
	parentLength int
	length       int
}

// FromSpans builds a map from spans already expressed on the parent axis.
// Non-lost spans must lie within [0, parentLength).
func FromSpans(parentLength int, spans ...Span) (*Map, error) {
	for _, s := range spans {
		if s.Lost {
			continue
		}
		if s.Start < 0 || s.End > parentLength || s.Start > s.End {
			return nil, fmt.Errorf("span %v on parent of length %d: %w", s, parentLength, ErrOutOfBounds)
		}
	}
	return newMap(parentLength, spans), nil
}

// New builds a map from (start, end) intervals. An interval given with
// start > end is reversed. Parts of an interval past either end of the
// parent become lost spans; an interval entirely outside is an error.
func New(parentLength int, intervals ...[2]int) (*Map, error) {
	spans := make([]Span, 0, len(intervals))
	for _, iv := range intervals {
		s := NewSpan(iv[0], iv[1], false)
		outside := s.End <= 0 || s.Start >= parentLength
		if s.Len() == 0 {
			outside = s.Start < 0 || s.End > parentLength
		}
		if outside {
			return nil, fmt.Errorf("interval %d:%d on parent of length %d: %w", iv[0], iv[1], parentLength, ErrOutOfBounds)
		}

		var left, right int
		if s.Start < 0 {
			left = -s.Start
			s.Start = 0
		}
		if s.End > parentLength {
			right = s.End - parentLength
			s.End = parentLength
		}

		// traversal order: reversed intervals start at their high end
		before, after := left, right
		if s.Reverse {
			before, after = right, left
		}
		if before > 0 {
			spans = append(spans, Gap(before))
		}
		spans = append(spans, s)
		if after > 0 {
			spans = append(spans, Gap(after))
		}
	}
	return newMap(parentLength, spans), nil
}

// MustNew is New for intervals known to be valid. It panics on error.
func MustNew(parentLength int, intervals ...[2]int) *Map {
	m, err := New(parentLength, intervals...)
	if err != nil {
		panic(err)
	}
	return m
}

// Empty returns a map with no spans on a parent of the given length.
func Empty(parentLength int) *Map {
	return newMap(parentLength, nil)
}

func newMap(parentLength int, spans []Span) *Map {
	m := &Map{
		spans:        make([]Span, len(spans)),
		offsets:      make([]int, len(spans)),
		parentLength: parentLength,
	}
	copy(m.spans, spans)
	for i, s := range m.spans {
		m.offsets[i] = m.length
		m.length += s.Len()
	}
	return m
}

// Spans returns a copy of the spans in traversal order.
func (m *Map) Spans() []Span {
	out := make([]Span, len(m.spans))
	copy(out, m.spans)
	return out
}

// ParentLength returns the length of the parent axis.
func (m *Map) ParentLength() int {
	return m.parentLength
}

// Len returns the length of the child frame, gap positions included.
func (m *Map) Len() int {
	return m.length
}

// NonGapLen returns the number of child positions with a parent location.
func (m *Map) NonGapLen() int {
	n := 0
	for _, s := range m.spans {
		if !s.Lost {
			n += s.Len()
		}
	}
	return n
}

// Complete reports whether every span has a parent location.
func (m *Map) Complete() bool {
	for _, s := range m.spans {
		if s.Lost {
			return false
		}
	}
	return true
}

// Useful reports whether the map covers at least one parent position.
func (m *Map) Useful() bool {
	return m.NonGapLen() > 0
}

// IsReversed reports whether every located span is traversed in reverse.
func (m *Map) IsReversed() bool {
	seen := false
	for _, s := range m.spans {
		if s.Lost || s.Len() == 0 {
			continue
		}
		if !s.Reverse {
			return false
		}
		seen = true
	}
	return seen
}

// Orientation returns feat.Reverse for wholly reversed maps, feat.Forward
// for wholly forward maps and feat.NotOriented otherwise.
func (m *Map) Orientation() feat.Orientation {
	fwd, rev := false, false
	for _, s := range m.spans {
		if s.Lost || s.Len() == 0 {
			continue
		}
		if s.Reverse {
			rev = true
		} else {
			fwd = true
		}
	}
	switch {
	case fwd && !rev:
		return feat.Forward
	case rev && !fwd:
		return feat.Reverse
	default:
		return feat.NotOriented
	}
}

// Start returns the lowest parent position covered, or 0 for maps that are not useful.
func (m *Map) Start() int {
	start, _, _ := m.bounds()
	return start
}

// End returns one past the highest parent position covered.
func (m *Map) End() int {
	_, end, _ := m.bounds()
	return end
}

func (m *Map) bounds() (start, end int, ok bool) {
	for _, s := range m.spans {
		if s.Lost || s.Len() == 0 {
			continue
		}
		if !ok {
			start, end, ok = s.Start, s.End, true
			continue
		}
		if s.Start < start {
			start = s.Start
		}
		if s.End > end {
			end = s.End
		}
	}
	return start, end, ok
}

// OverlapsRange reports whether any located span shares a position with [start, end).
func (m *Map) OverlapsRange(start, end int) bool {
	for _, s := range m.spans {
		if s.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// Compose maps sub, whose parent frame is the child frame of m, through m.
// The result spans m's parent frame and has the same length as sub.
func (m *Map) Compose(sub *Map) (*Map, error) {
	if sub.parentLength != m.length {
		return nil, fmt.Errorf("compose map of length %d with map on parent of length %d: %w",
			m.length, sub.parentLength, ErrFrameMismatch)
	}

	var out []Span
	for _, s := range sub.spans {
		if s.Lost {
			out = append(out, s)
			continue
		}
		pieces := m.remap(s.Start, s.End)
		if s.Reverse {
			for i, j := 0, len(pieces)-1; i < j; i, j = i+1, j-1 {
				pieces[i], pieces[j] = pieces[j], pieces[i]
			}
			for i := range pieces {
				pieces[i] = pieces[i].Reversed()
			}
		}
		out = append(out, pieces...)
	}
	return newMap(m.parentLength, mergeGaps(out)), nil
}

// remap returns the parent pieces of child range [start, end) in traversal order.
func (m *Map) remap(start, end int) []Span {
	var pieces []Span
	for i, ms := range m.spans {
		lo, hi := m.offsets[i], m.offsets[i]+ms.Len()
		if hi <= start || lo >= end {
			continue
		}
		r0 := max(start, lo) - lo
		r1 := min(end, hi) - lo
		switch {
		case ms.Lost:
			pieces = append(pieces, Gap(r1-r0))
		case ms.Reverse:
			pieces = append(pieces, Span{Start: ms.End - r1, End: ms.End - r0, Reverse: true})
		default:
			pieces = append(pieces, Span{Start: ms.Start + r0, End: ms.Start + r1})
		}
	}
	return pieces
}

// mergeGaps joins adjacent lost spans.
func mergeGaps(spans []Span) []Span {
	out := spans[:0:0]
	for _, s := range spans {
		if n := len(out); n > 0 && s.Lost && out[n-1].Lost {
			out[n-1].End += s.Len()
			continue
		}
		out = append(out, s)
	}
	return out
}

type located struct {
	span   Span
	offset int
}

func (m *Map) locatedSorted() []located {
	var ls []located
	for i, s := range m.spans {
		if s.Lost || s.Len() == 0 {
			continue
		}
		ls = append(ls, located{span: s, offset: m.offsets[i]})
	}
	sort.SliceStable(ls, func(i, j int) bool { return ls[i].span.Start < ls[j].span.Start })
	return ls
}

// Inverse swaps the roles of the frames: the result maps the parent axis
// onto the child frame. Parent positions m does not cover become gaps.
func (m *Map) Inverse() (*Map, error) {
	var out []Span
	cursor := 0
	for _, l := range m.locatedSorted() {
		if l.span.Start < cursor {
			return nil, fmt.Errorf("span %v: %w", l.span, ErrUninvertible)
		}
		if l.span.Start > cursor {
			out = append(out, Gap(l.span.Start-cursor))
		}
		out = append(out, Span{Start: l.offset, End: l.offset + l.span.Len(), Reverse: l.span.Reverse})
		cursor = l.span.End
	}
	if cursor < m.parentLength {
		out = append(out, Gap(m.parentLength-cursor))
	}
	return newMap(m.length, out), nil
}

// Nongap returns the map with lost spans removed.
func (m *Map) Nongap() *Map {
	spans := make([]Span, 0, len(m.spans))
	for _, s := range m.spans {
		if !s.Lost {
			spans = append(spans, s)
		}
	}
	return newMap(m.parentLength, spans)
}

// WithoutGaps is an alias of Nongap.
func (m *Map) WithoutGaps() *Map {
	return m.Nongap()
}

// Gaps returns the child positions of lost spans as a map on the child frame.
func (m *Map) Gaps() *Map {
	var spans []Span
	for i, s := range m.spans {
		if s.Lost {
			spans = append(spans, Span{Start: m.offsets[i], End: m.offsets[i] + s.Len()})
		}
	}
	return newMap(m.length, spans)
}

// Shadow returns the parent positions not covered by m, the gaps of its inverse.
func (m *Map) Shadow() *Map {
	var spans []Span
	cursor := 0
	for _, s := range m.Covered().spans {
		if s.Start > cursor {
			spans = append(spans, Span{Start: cursor, End: s.Start})
		}
		cursor = s.End
	}
	if cursor < m.parentLength {
		spans = append(spans, Span{Start: cursor, End: m.parentLength})
	}
	return newMap(m.parentLength, spans)
}

// Covered returns the union of located spans as a sorted forward map.
func (m *Map) Covered() *Map {
	var out []Span
	for _, l := range m.locatedSorted() {
		s := Span{Start: l.span.Start, End: l.span.End}
		if n := len(out); n > 0 && s.Start <= out[n-1].End {
			if s.End > out[n-1].End {
				out[n-1].End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return newMap(m.parentLength, out)
}

// CoveringSpan collapses the map to one span from its lowest to its highest
// covered position. The span is reversed when the whole map is.
func (m *Map) CoveringSpan() *Map {
	start, end, ok := m.bounds()
	if !ok {
		return Empty(m.parentLength)
	}
	return newMap(m.parentLength, []Span{{Start: start, End: end, Reverse: m.IsReversed()}})
}

// NucleicReversed expresses the map on the reverse complement of its parent.
// Each span is mirrored about ParentLength with its direction flipped, and
// traversal order is kept so child positions still read the same residues.
func (m *Map) NucleicReversed() *Map {
	spans := make([]Span, len(m.spans))
	for i, s := range m.spans {
		spans[i] = s.ReversedRelativeTo(m.parentLength)
	}
	return newMap(m.parentLength, spans)
}

// Reversed returns the map traversed back to front on the same parent.
func (m *Map) Reversed() *Map {
	n := len(m.spans)
	spans := make([]Span, n)
	for i, s := range m.spans {
		spans[n-1-i] = s.Reversed()
	}
	return newMap(m.parentLength, spans)
}

// Shifted moves every located span by offset onto a parent of the given length.
func (m *Map) Shifted(offset, parentLength int) (*Map, error) {
	spans := make([]Span, len(m.spans))
	for i, s := range m.spans {
		spans[i] = s.Shifted(offset)
	}
	return FromSpans(parentLength, spans...)
}

// Concat joins maps sharing one parent into a single map.
func Concat(maps ...*Map) (*Map, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("concat of no maps: %w", ErrFrameMismatch)
	}
	parentLength := maps[0].parentLength
	var spans []Span
	for _, m := range maps {
		if m.parentLength != parentLength {
			return nil, fmt.Errorf("concat maps on parents %d and %d: %w", parentLength, m.parentLength, ErrFrameMismatch)
		}
		spans = append(spans, m.spans...)
	}
	return newMap(parentLength, spans), nil
}

// Coordinates returns the (start, end) pairs of located spans in traversal order.
func (m *Map) Coordinates() [][2]int {
	var out [][2]int
	for _, s := range m.spans {
		if !s.Lost {
			out = append(out, [2]int{s.Start, s.End})
		}
	}
	return out
}

// Equal reports whether two maps have the same spans and parent length.
func (m *Map) Equal(o *Map) bool {
	if m.parentLength != o.parentLength || len(m.spans) != len(o.spans) {
		return false
	}
	for i := range m.spans {
		if m.spans[i] != o.spans[i] {
			return false
		}
	}
	return true
}

func (m *Map) String() string {
	parts := make([]string, len(m.spans))
	for i, s := range m.spans {
		parts[i] = s.String()
	}
	return fmt.Sprintf("[%s]/%d", strings.Join(parts, ", "), m.parentLength)
}
