// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"fmt"

	"github.com/tomtom215/seqnote/internal/location"
)

// Index selects a region of an Annotatable. Positions, ranges, maps,
// features and lists of these are all indices; *Feature is one directly.
type Index interface {
	asMap(target Annotatable) (*location.Map, error)
}

// AsMap resolves idx to a map on the frame of target.
func AsMap(target Annotatable, idx Index) (*location.Map, error) {
	return idx.asMap(target)
}

type position int

// At selects a single position. Negative positions count from the end.
func At(i int) Index {
	return position(i)
}

func (p position) asMap(target Annotatable) (*location.Map, error) {
	n := target.Len()
	i := int(p)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("position %d of %d: %w", int(p), n, location.ErrOutOfBounds)
	}
	return location.New(n, [2]int{i, i + 1})
}

type interval struct {
	start, end         int
	openStart, openEnd bool
}

// Between selects [start, end). Negative bounds count from the end and
// bounds past either end are clamped. start > end selects the range reversed.
func Between(start, end int) Index {
	return interval{start: start, end: end}
}

// From selects from start to the end.
func From(start int) Index {
	return interval{start: start, openEnd: true}
}

// To selects from the beginning up to end.
func To(end int) Index {
	return interval{end: end, openStart: true}
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

func (iv interval) asMap(target Annotatable) (*location.Map, error) {
	n := target.Len()
	start, end := 0, n
	if !iv.openStart {
		start = clampIndex(iv.start, n)
	}
	if !iv.openEnd {
		end = clampIndex(iv.end, n)
	}
	return location.New(n, [2]int{start, end})
}

type mapIndex struct {
	m *location.Map
}

// MapOf uses m directly. Its parent length must equal the target length.
func MapOf(m *location.Map) Index {
	return mapIndex{m: m}
}

func (mi mapIndex) asMap(target Annotatable) (*location.Map, error) {
	if mi.m.ParentLength() != target.Len() {
		return nil, fmt.Errorf("map %v on target of length %d: %w", mi.m, target.Len(), ErrLengthMismatch)
	}
	return mi.m, nil
}

type manyIndex []Index

// Many concatenates the spans of several indices in order.
func Many(indices ...Index) Index {
	return manyIndex(indices)
}

func (mi manyIndex) asMap(target Annotatable) (*location.Map, error) {
	if len(mi) == 0 {
		return location.Empty(target.Len()), nil
	}
	maps := make([]*location.Map, len(mi))
	for i, idx := range mi {
		m, err := idx.asMap(target)
		if err != nil {
			return nil, err
		}
		maps[i] = m
	}
	return location.Concat(maps...)
}

// asMap walks f's ancestry up to target, composing maps on the way.
func (f *Feature) asMap(target Annotatable) (*location.Map, error) {
	m := f.m
	parent := f.parent
	for parent != target {
		pf, ok := parent.(*Feature)
		if !ok {
			return nil, fmt.Errorf("%s: %w", f, ErrAncestryMismatch)
		}
		composed, err := pf.m.Compose(m)
		if err != nil {
			return nil, err
		}
		m = composed
		parent = pf.parent
	}
	return m, nil
}
