// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/seqnote/internal/location"
)

// Container is an Annotatable that can be cut along a map on its own frame.
// Features resolve GetSlice against the Container at the root of their ancestry.
type Container interface {
	Annotatable
	SliceByMap(m *location.Map) (Container, error)
}

// Point is one (x1, x2, y) measurement of a variable feature, with x
// relative to the start of the feature.
type Point struct {
	X1 int     `json:"x1"`
	X2 int     `json:"x2"`
	Y  float64 `json:"y"`
}

// Construction holds everything needed to build a Feature on a parent.
// It is what Document serializes and what copies are made from.
type Construction struct {
	Kind Kind
	Type string
	Name string
	Map  *location.Map

	// Source only: originating accession and the map onto it.
	Accession string
	Basemap   *location.Map

	// Variable only.
	Points []Point

	// SimpleVariable only: one value per child position of Map.
	Data []float64
}

func (c Construction) clone() Construction {
	if c.Points != nil {
		c.Points = append([]Point(nil), c.Points...)
	}
	if c.Data != nil {
		c.Data = append([]float64(nil), c.Data...)
	}
	return c
}

// Feature is an annotation positioned on a parent by a coordinate map.
type Feature struct {
	parent  Annotatable
	base    Annotatable
	m       *location.Map
	baseMap *location.Map

	kind     Kind
	bioType  string
	name     string
	attached bool

	// subs is nil for kinds that cannot host sub-features
	subs *Set

	accession string
	basemap   *location.Map
	points    []Point
	data      []float64
}

// New builds an unattached feature on parent.
func New(parent Annotatable, c Construction) (*Feature, error) {
	if parent == nil {
		return nil, errors.New("feature needs a parent")
	}
	if c.Map == nil {
		return nil, errors.New("feature needs a map")
	}
	if c.Map.ParentLength() != parent.Len() {
		return nil, fmt.Errorf("map %v on parent of length %d: %w", c.Map, parent.Len(), ErrLengthMismatch)
	}
	if err := validateKind(c); err != nil {
		return nil, err
	}

	c = c.clone()
	f := &Feature{
		parent:    parent,
		m:         c.Map,
		kind:      c.Kind,
		bioType:   c.Type,
		name:      c.Name,
		accession: c.Accession,
		basemap:   c.Basemap,
		points:    c.Points,
		data:      c.Data,
	}
	if c.Kind == KindSource {
		f.bioType = "source"
		if f.name == "" {
			f.name = fmt.Sprintf("%v of %s", c.Basemap, c.Accession)
		}
	}
	if c.Kind == KindAnnotatable {
		f.subs = NewSet(f)
	}

	if pf, ok := parent.(*Feature); ok {
		bm, err := pf.baseMap.Compose(c.Map)
		if err != nil {
			return nil, err
		}
		f.base, f.baseMap = pf.base, bm
	} else {
		f.base, f.baseMap = parent, c.Map
	}
	return f, nil
}

func validateKind(c Construction) error {
	switch c.Kind {
	case KindPlain, KindAnnotatable, KindVariable:
		return nil
	case KindSource:
		if c.Accession == "" || c.Basemap == nil {
			return fmt.Errorf("source feature needs an accession and basemap: %w", ErrFeatureKind)
		}
		if c.Basemap.Len() != c.Map.Len() {
			return fmt.Errorf("basemap length %d for map length %d: %w", c.Basemap.Len(), c.Map.Len(), ErrLengthMismatch)
		}
	case KindSimpleVariable:
		if len(c.Data) != c.Map.Len() {
			return fmt.Errorf("%d values for map length %d: %w", len(c.Data), c.Map.Len(), ErrLengthMismatch)
		}
	default:
		return fmt.Errorf("%v: %w", c.Kind, ErrFeatureKind)
	}
	return nil
}

// NewSource builds a source feature placing basemap's region of accession at m.
func NewSource(parent Annotatable, m *location.Map, accession string, basemap *location.Map) (*Feature, error) {
	return New(parent, Construction{Kind: KindSource, Map: m, Accession: accession, Basemap: basemap})
}

// NewVariable builds a variable feature spanning all of its points.
// Point coordinates are given on the parent and stored relative to the
// feature start.
func NewVariable(parent Annotatable, bioType, name string, points []Point) (*Feature, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("variable %q has no points: %w", name, ErrFeatureKind)
	}
	start, end := math.MaxInt, math.MinInt
	for _, p := range points {
		start = min(start, p.X1, p.X2)
		end = max(end, p.X1, p.X2)
	}
	rel := make([]Point, len(points))
	for i, p := range points {
		rel[i] = Point{X1: p.X1 - start, X2: p.X2 - start, Y: p.Y}
	}
	m, err := location.New(parent.Len(), [2]int{start, end})
	if err != nil {
		return nil, err
	}
	return New(parent, Construction{Kind: KindVariable, Type: bioType, Name: name, Map: m, Points: rel})
}

// NewSimpleVariable builds a feature holding one value per parent position.
func NewSimpleVariable(parent Annotatable, bioType, name string, data []float64) (*Feature, error) {
	if len(data) != parent.Len() {
		return nil, fmt.Errorf("%d values for parent of length %d: %w", len(data), parent.Len(), ErrLengthMismatch)
	}
	m, err := location.New(parent.Len(), [2]int{0, len(data)})
	if err != nil {
		return nil, err
	}
	return New(parent, Construction{Kind: KindSimpleVariable, Type: bioType, Name: name, Map: m, Data: data})
}

// Parent returns the container the feature is placed on.
func (f *Feature) Parent() Annotatable { return f.parent }

// Base returns the root container of the feature's ancestry.
func (f *Feature) Base() Annotatable { return f.base }

// Map returns the map onto the parent.
func (f *Feature) Map() *location.Map { return f.m }

// BaseMap returns the map onto the base.
func (f *Feature) BaseMap() *location.Map { return f.baseMap }

// Kind returns the feature variant.
func (f *Feature) Kind() Kind { return f.kind }

// Type returns the feature category, such as "CDS".
func (f *Feature) Type() string { return f.bioType }

// Attached reports whether the feature is registered with its parent.
func (f *Feature) Attached() bool { return f.attached }

// Annotations returns the sub-features. It is nil unless the kind is KindAnnotatable.
func (f *Feature) Annotations() *Set { return f.subs }

// Accession returns the originating accession of a source feature.
func (f *Feature) Accession() string { return f.accession }

// Basemap returns the map of a source feature onto its accession.
func (f *Feature) Basemap() *location.Map { return f.basemap }

// Points returns the measurements of a variable feature.
func (f *Feature) Points() []Point { return append([]Point(nil), f.points...) }

// Data returns the per-position values of a simple variable feature.
func (f *Feature) Data() []float64 { return append([]float64(nil), f.data...) }

// Construction returns the parameters the feature can be rebuilt from.
func (f *Feature) Construction() Construction {
	return Construction{
		Kind:      f.kind,
		Type:      f.bioType,
		Name:      f.name,
		Map:       f.m,
		Accession: f.accession,
		Basemap:   f.basemap,
		Points:    f.points,
		Data:      f.data,
	}.clone()
}

// Coordinates returns the located (start, end) pairs on the parent.
func (f *Feature) Coordinates() [][2]int {
	return f.m.Coordinates()
}

// Attach registers the feature with its parent.
func (f *Feature) Attach() error {
	return f.parent.Annotations().Attach(f)
}

// Detach removes the feature from its parent.
func (f *Feature) Detach() error {
	return f.parent.Annotations().Detach(f)
}

func (f *Feature) String() string {
	if f.name != "" {
		return fmt.Sprintf("%s %q at %v", f.bioType, f.name, f.m)
	}
	return fmt.Sprintf("%s at %v", f.bioType, f.m)
}

// Slice returns the part of the feature selected by idx. Annotatable,
// source and simple variable features yield a sibling on the same parent;
// other kinds yield a plain feature whose parent is f.
func (f *Feature) Slice(idx Index) (*Feature, error) {
	m, err := AsMap(f, idx)
	if err != nil {
		return nil, err
	}

	switch f.kind {
	case KindAnnotatable:
		composed, err := f.m.Compose(m)
		if err != nil {
			return nil, err
		}
		nf, err := New(f.parent, Construction{Kind: KindAnnotatable, Type: "slice", Map: composed})
		if err != nil {
			return nil, err
		}
		if err := nf.subs.Attach(SlicedAnnotations(f, nf, m)...); err != nil {
			return nil, err
		}
		return nf, nil
	case KindSource:
		composed, err := f.m.Compose(m)
		if err != nil {
			return nil, err
		}
		bm, err := f.basemap.Compose(m)
		if err != nil {
			return nil, err
		}
		return NewSource(f.parent, composed, f.accession, bm)
	case KindSimpleVariable:
		composed, err := f.m.Compose(m)
		if err != nil {
			return nil, err
		}
		c := f.Construction()
		c.Map, c.Data = composed, pick(f.data, m)
		return New(f.parent, c)
	default:
		return New(f, Construction{Kind: KindPlain, Type: "slice", Name: fmt.Sprintf("%v of %s", m, f.name), Map: m})
	}
}

// pick reads values along m, a map on the frame of data. Lost positions read NaN.
func pick(data []float64, m *location.Map) []float64 {
	out := make([]float64, 0, m.Len())
	for _, s := range m.Spans() {
		switch {
		case s.Lost:
			for i := 0; i < s.Len(); i++ {
				out = append(out, math.NaN())
			}
		case s.Reverse:
			for i := s.End - 1; i >= s.Start; i-- {
				out = append(out, data[i])
			}
		default:
			out = append(out, data[s.Start:s.End]...)
		}
	}
	return out
}

// GetSlice returns the fragment of the base container the feature covers.
// With complete set, a feature with lost spans fails with
// ErrRangeIncomplete; otherwise the lost spans are skipped.
func (f *Feature) GetSlice(complete bool) (Container, error) {
	c, ok := f.base.(Container)
	if !ok {
		return nil, fmt.Errorf("base of %s cannot be sliced: %w", f, ErrFeatureKind)
	}
	m := f.baseMap
	if !m.Complete() {
		if complete {
			return nil, fmt.Errorf("%s: %w", f, ErrRangeIncomplete)
		}
		m = m.Nongap()
	}
	return c.SliceByMap(m)
}

// WithoutLostSpans returns the feature restricted to its located spans.
// A complete feature is returned unchanged.
func (f *Feature) WithoutLostSpans() (*Feature, error) {
	if f.m.Complete() {
		return f, nil
	}
	// child positions that have a parent location
	keep := f.m.Gaps().Shadow()

	switch f.kind {
	case KindSource:
		return f, nil
	case KindVariable:
		return nil, fmt.Errorf("variable %s: %w", f, ErrRangeIncomplete)
	}

	c := f.Construction()
	composed, err := f.m.Compose(keep)
	if err != nil {
		return nil, err
	}
	c.Map = composed
	if f.kind == KindSimpleVariable {
		c.Data = pick(f.data, keep)
	}
	nf, err := New(f.parent, c)
	if err != nil {
		return nil, err
	}
	if nf.subs != nil {
		if err := nf.subs.Attach(SlicedAnnotations(f, nf, keep)...); err != nil {
			return nil, err
		}
	}
	return nf, nil
}

// AsOneSpan returns a feature covering f from its lowest to highest position.
func (f *Feature) AsOneSpan() (*Feature, error) {
	kind := KindPlain
	if f.kind == KindAnnotatable {
		kind = KindAnnotatable
	}
	return New(f.parent, Construction{Kind: kind, Type: "span", Name: f.name, Map: f.m.CoveringSpan()})
}

// Shadow returns a region feature over the parent positions f does not cover.
func (f *Feature) Shadow() (*Feature, error) {
	return New(f.parent, Construction{Kind: KindPlain, Type: "region", Name: "not " + f.name, Map: f.m.Shadow()})
}

// RemappedTo re-expresses f on grandparent through gmap, a map from the
// frame of f's parent onto grandparent. Source features drop lost spans
// from both of their maps.
func (f *Feature) RemappedTo(grandparent Annotatable, gmap *location.Map) (*Feature, error) {
	m, err := gmap.Compose(f.m)
	if err != nil {
		return nil, err
	}
	c := f.Construction()
	c.Map = m

	if f.kind == KindSource {
		keep := m.Gaps().Shadow()
		if c.Map, err = m.Compose(keep); err != nil {
			return nil, err
		}
		if c.Basemap, err = f.basemap.Compose(keep); err != nil {
			return nil, err
		}
		c.Name = ""
	}

	nf, err := New(grandparent, c)
	if err != nil {
		return nil, err
	}
	if err := copySubs(nf, f); err != nil {
		return nil, err
	}
	return nf, nil
}

// ProjectedToBase re-expresses f directly on base, an ancestor container.
func (f *Feature) ProjectedToBase(base Annotatable) (*Feature, error) {
	m, err := f.asMap(base)
	if err != nil {
		return nil, err
	}
	c := f.Construction()
	c.Map = m
	return New(base, c)
}

// CopyAnnotationsTo attaches a copy of f, sub-features included, to dst.
// dst must have the same length as f's parent.
func (f *Feature) CopyAnnotationsTo(dst Annotatable) (*Feature, error) {
	if dst.Len() != f.parent.Len() {
		return nil, fmt.Errorf("copy %s to target of length %d, parent length %d: %w",
			f, dst.Len(), f.parent.Len(), ErrLengthMismatch)
	}
	nf, err := New(dst, f.Construction())
	if err != nil {
		return nil, err
	}
	if err := copySubs(nf, f); err != nil {
		return nil, err
	}
	if err := dst.Annotations().Attach(nf); err != nil {
		return nil, err
	}
	return nf, nil
}

// copySubs attaches copies of src's useful sub-features to dst. Both must
// have the same length.
func copySubs(dst, src *Feature) error {
	if src.subs.Len() == 0 || dst.subs == nil {
		return nil
	}
	copies := make([]*Feature, 0, src.subs.Len())
	for _, sub := range src.subs.All() {
		if !sub.m.Useful() {
			continue
		}
		nf, err := New(dst, sub.Construction())
		if err != nil {
			return err
		}
		if err := copySubs(nf, sub); err != nil {
			return err
		}
		copies = append(copies, nf)
	}
	return dst.subs.Attach(copies...)
}
