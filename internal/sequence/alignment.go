// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package sequence

import (
	"fmt"

	"github.com/tomtom215/seqnote/internal/annotation"
	"github.com/tomtom215/seqnote/internal/location"
)

var _ annotation.Container = (*Alignment)(nil)

// Alignment is an ordered set of equal-length rows with its own annotations.
type Alignment struct {
	rows   []*Aligned
	index  map[string]int
	length int
	annots *annotation.Set
}

// NewAlignment builds an alignment from rows with distinct names and equal length.
func NewAlignment(rows ...*Aligned) (*Alignment, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("alignment without rows: %w", ErrShape)
	}
	a := &Alignment{
		rows:   rows,
		index:  make(map[string]int, len(rows)),
		length: rows[0].Len(),
	}
	for i, r := range rows {
		if r.Len() != a.length {
			return nil, fmt.Errorf("row %s has %d columns, want %d: %w", r.Name(), r.Len(), a.length, ErrShape)
		}
		if _, dup := a.index[r.Name()]; dup {
			return nil, fmt.Errorf("duplicate row %s: %w", r.Name(), ErrShape)
		}
		a.index[r.Name()] = i
	}
	a.annots = annotation.NewSet(a)
	return a, nil
}

// FromGapped parses gapped DNA rows. names and rows pair up by position.
func FromGapped(names, rows []string) (*Alignment, error) {
	if len(names) != len(rows) {
		return nil, fmt.Errorf("%d names for %d rows: %w", len(names), len(rows), ErrShape)
	}
	aligned := make([]*Aligned, len(rows))
	for i := range rows {
		aligned[i] = ParseAligned(names[i], rows[i])
	}
	return NewAlignment(aligned...)
}

// Len returns the number of columns.
func (a *Alignment) Len() int { return a.length }

// Annotations returns the features attached to the alignment.
func (a *Alignment) Annotations() *annotation.Set { return a.annots }

// Names returns the row names in order.
func (a *Alignment) Names() []string {
	names := make([]string, len(a.rows))
	for i, r := range a.rows {
		names[i] = r.Name()
	}
	return names
}

// Row returns the row called name.
func (a *Alignment) Row(name string) (*Aligned, error) {
	i, ok := a.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownSequence)
	}
	return a.rows[i], nil
}

// ToMap returns the gapped text of every row by name.
func (a *Alignment) ToMap() map[string]string {
	out := make(map[string]string, len(a.rows))
	for _, r := range a.rows {
		out[r.Name()] = r.String()
	}
	return out
}

// AddFeature attaches an annotatable feature over alignment columns.
func (a *Alignment) AddFeature(bioType, name string, intervals ...[2]int) (*annotation.Feature, error) {
	return annotation.AddFeature(a, bioType, name, intervals...)
}

// SliceByMap implements annotation.Container. Lost spans of m become gap
// columns in every row.
func (a *Alignment) SliceByMap(m *location.Map) (annotation.Container, error) {
	return a.sliceByMap(m)
}

func (a *Alignment) sliceByMap(m *location.Map) (*Alignment, error) {
	if m.ParentLength() != a.length {
		return nil, fmt.Errorf("map %v on alignment of %d columns: %w", m, a.length, annotation.ErrLengthMismatch)
	}
	rows := make([]*Aligned, len(a.rows))
	for i, r := range a.rows {
		sliced, err := r.sliced(m)
		if err != nil {
			return nil, err
		}
		rows[i] = sliced
	}
	out, err := NewAlignment(rows...)
	if err != nil {
		return nil, err
	}
	if err := out.annots.Attach(annotation.SlicedAnnotations(a, out, m)...); err != nil {
		return nil, err
	}
	return out, nil
}

// Slice returns the columns selected by idx with overlapping annotations remapped.
func (a *Alignment) Slice(idx annotation.Index) (*Alignment, error) {
	m, err := annotation.AsMap(a, idx)
	if err != nil {
		return nil, err
	}
	return a.sliceByMap(m)
}

// Concat appends the columns of others, matching rows by name.
func (a *Alignment) Concat(others ...*Alignment) (*Alignment, error) {
	rows := make([]*Aligned, len(a.rows))
	copy(rows, a.rows)
	for _, o := range others {
		if len(o.rows) != len(rows) {
			return nil, fmt.Errorf("concat %d rows with %d: %w", len(rows), len(o.rows), ErrShape)
		}
		for i, r := range rows {
			other, err := o.Row(r.Name())
			if err != nil {
				return nil, err
			}
			if rows[i], err = r.concat(other); err != nil {
				return nil, err
			}
		}
	}
	out, err := NewAlignment(rows...)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, part := range append([]*Alignment{a}, others...) {
		shifted, err := annotation.ShiftedAnnotations(part, out, offset)
		if err != nil {
			return nil, err
		}
		if err := out.annots.Attach(shifted...); err != nil {
			return nil, err
		}
		offset += part.Len()
	}
	return out, nil
}

// ReverseComplement reverse complements every row and mirrors the
// alignment annotations.
func (a *Alignment) ReverseComplement() (*Alignment, error) {
	rows := make([]*Aligned, len(a.rows))
	for i, r := range a.rows {
		rc, err := r.reverseComplement()
		if err != nil {
			return nil, err
		}
		rows[i] = rc
	}
	out, err := NewAlignment(rows...)
	if err != nil {
		return nil, err
	}
	if err := annotation.NucleicReversedOn(a, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByAnnotation returns the columns of every alignment feature matching
// bioType and name. Partial features are handled as in Sequence.GetByAnnotation.
func (a *Alignment) GetByAnnotation(bioType, name string, ignorePartial bool) ([]*Alignment, error) {
	features, err := matchingComplete(a.annots, bioType, name, ignorePartial)
	if err != nil {
		return nil, err
	}
	out := make([]*Alignment, 0, len(features))
	for _, f := range features {
		part, err := a.sliceByMap(f.Map())
		if err != nil {
			return nil, err
		}
		out = append(out, part)
	}
	return out, nil
}

// ProjectAnnotation re-expresses an alignment feature on the sequence of
// row seqName. Columns where the row has gaps become lost spans.
func (a *Alignment) ProjectAnnotation(seqName string, f *annotation.Feature) (*annotation.Feature, error) {
	if f.Parent() != annotation.Annotatable(a) {
		return nil, fmt.Errorf("%s: %w", f, annotation.ErrAncestryMismatch)
	}
	row, err := a.Row(seqName)
	if err != nil {
		return nil, err
	}
	return f.RemappedTo(row.seq, row.m)
}

// AnnotationsFromSeq returns the features of row seqName's sequence that
// match bioType and name, re-expressed on the alignment columns. Features
// falling wholly outside the row's columns are left out.
func (a *Alignment) AnnotationsFromSeq(seqName, bioType, name string) ([]*annotation.Feature, error) {
	row, err := a.Row(seqName)
	if err != nil {
		return nil, err
	}
	features, err := row.seq.Annotations().Matching(bioType, name, false)
	if err != nil {
		return nil, err
	}
	inv, err := row.m.Inverse()
	if err != nil {
		return nil, err
	}
	out := make([]*annotation.Feature, 0, len(features))
	for _, f := range features {
		nf, err := f.RemappedTo(a, inv)
		if err != nil {
			return nil, err
		}
		if nf.Map().Useful() {
			out = append(out, nf)
		}
	}
	return out, nil
}
