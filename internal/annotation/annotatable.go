// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"fmt"
	"strings"

	"github.com/tomtom215/seqnote/internal/location"
	"github.com/tomtom215/seqnote/internal/logging"
)

// AddFeature builds an annotatable feature over intervals of parent and attaches it.
func AddFeature(parent Annotatable, bioType, name string, intervals ...[2]int) (*Feature, error) {
	m, err := location.New(parent.Len(), intervals...)
	if err != nil {
		return nil, err
	}
	return AddMap(parent, bioType, name, m)
}

// AddMap builds an annotatable feature at m and attaches it to parent.
func AddMap(parent Annotatable, bioType, name string, m *location.Map) (*Feature, error) {
	f, err := New(parent, Construction{Kind: KindAnnotatable, Type: bioType, Name: name, Map: m})
	if err != nil {
		return nil, err
	}
	if err := parent.Annotations().Attach(f); err != nil {
		return nil, err
	}
	return f, nil
}

// SlicedAnnotations returns the annotations of src that overlap slice,
// re-expressed on dst, the container whose frame is the child frame of
// slice. Annotations outside the slice are dropped.
func SlicedAnnotations(src, dst Annotatable, slice *location.Map) []*Feature {
	set := src.Annotations()
	if set.Len() == 0 || !slice.Useful() {
		return nil
	}
	inv, err := slice.Inverse()
	if err != nil {
		logging.Debug().Err(err).Str("slice", slice.String()).Msg("annotations dropped")
		return nil
	}

	start, end := slice.Start(), slice.End()
	var out []*Feature
	for _, a := range set.All() {
		if !a.m.Useful() || a.m.Start() >= end || a.m.End() <= start {
			continue
		}
		na, err := a.RemappedTo(dst, inv)
		if err != nil {
			logging.Debug().Err(err).Str("feature", a.String()).Msg("annotation dropped")
			continue
		}
		if na.m.Useful() {
			out = append(out, na)
		}
	}
	return out
}

// ShiftedAnnotations returns the annotations of src re-expressed on dst,
// where src occupies dst from position shift onwards.
func ShiftedAnnotations(src, dst Annotatable, shift int) ([]*Feature, error) {
	set := src.Annotations()
	if set.Len() == 0 {
		return nil, nil
	}
	placement, err := location.New(dst.Len(), [2]int{shift, shift + src.Len()})
	if err != nil {
		return nil, err
	}
	out := make([]*Feature, 0, set.Len())
	for _, a := range set.All() {
		na, err := a.RemappedTo(dst, placement)
		if err != nil {
			return nil, err
		}
		out = append(out, na)
	}
	return out, nil
}

// NucleicReversedOn attaches to dst, the reverse complement of src, a copy
// of every annotation of src with its map reversed. Type, name and
// sub-features are kept.
func NucleicReversedOn(src, dst Annotatable) error {
	if src.Len() != dst.Len() {
		return fmt.Errorf("reverse complement of length %d onto length %d: %w", src.Len(), dst.Len(), ErrLengthMismatch)
	}
	all := src.Annotations().All()
	out := make([]*Feature, 0, len(all))
	for _, a := range all {
		c := a.Construction()
		c.Map = a.m.NucleicReversed()
		na, err := New(dst, c)
		if err != nil {
			return err
		}
		if err := copySubs(na, a); err != nil {
			return err
		}
		out = append(out, na)
	}
	return dst.Annotations().Attach(out...)
}

// CopyAll attaches copies of every annotation of src to dst.
func CopyAll(src, dst Annotatable) error {
	for _, a := range src.Annotations().All() {
		if _, err := a.CopyAnnotationsTo(dst); err != nil {
			return err
		}
	}
	return nil
}

// RegionCoveringAll returns an unattached feature on target covering the
// union of the features' spans, overlaps collapsed. Its type joins the
// distinct input types with commas and its name the distinct input names.
// Features that are not useful are skipped. Without recurse every feature
// must be placed directly on target; with recurse sub-features are
// projected through their ancestry.
func RegionCoveringAll(target Annotatable, features []*Feature, recurse bool) (*Feature, error) {
	var (
		spans []location.Span
		types []string
		names []string
	)
	for _, f := range features {
		if !recurse && f.parent != target {
			return nil, fmt.Errorf("%s: %w", f, ErrAncestryMismatch)
		}
		m, err := f.asMap(target)
		if err != nil {
			return nil, err
		}
		if !m.Useful() {
			continue
		}
		spans = append(spans, m.Nongap().Spans()...)
		types = appendDistinct(types, f.bioType)
		names = appendDistinct(names, f.name)
	}

	m, err := location.FromSpans(target.Len(), spans...)
	if err != nil {
		return nil, err
	}
	return New(target, Construction{
		Kind: KindPlain,
		Type: strings.Join(types, ","),
		Name: strings.Join(names, ","),
		Map:  m.Covered(),
	})
}

func appendDistinct(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
