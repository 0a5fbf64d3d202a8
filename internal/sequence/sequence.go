// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package sequence

import (
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"

	"github.com/tomtom215/seqnote/internal/annotation"
	"github.com/tomtom215/seqnote/internal/location"
)

var (
	_ annotation.Container = (*Sequence)(nil)
	_ feat.Feature         = (*Sequence)(nil)
)

// Sequence is a named run of residues with attached annotations.
type Sequence struct {
	name   string
	data   []byte
	alpha  alphabet.Complementor
	annots *annotation.Set
}

// New returns a DNA sequence using the IUPAC redundant alphabet.
func New(name, data string) *Sequence {
	return NewWithAlphabet(name, data, alphabet.DNAredundant)
}

// NewRNA returns an RNA sequence using the IUPAC redundant alphabet.
func NewRNA(name, data string) *Sequence {
	return NewWithAlphabet(name, data, alphabet.RNAredundant)
}

// NewWithAlphabet returns a sequence whose complement is taken from alpha.
func NewWithAlphabet(name, data string, alpha alphabet.Complementor) *Sequence {
	return newSequence(name, []byte(data), alpha)
}

func newSequence(name string, data []byte, alpha alphabet.Complementor) *Sequence {
	s := &Sequence{name: name, data: data, alpha: alpha}
	s.annots = annotation.NewSet(s)
	return s
}

// Name returns the sequence name.
func (s *Sequence) Name() string { return s.name }

// Len returns the number of residues.
func (s *Sequence) Len() int { return len(s.data) }

// Start is always 0; with End and Location it lets features use the
// sequence as their biogo location.
func (s *Sequence) Start() int { return 0 }

// End returns the sequence length.
func (s *Sequence) End() int { return len(s.data) }

// Description returns an empty string.
func (s *Sequence) Description() string { return "" }

// Location returns nil; a sequence is a root.
func (s *Sequence) Location() feat.Feature { return nil }

// Alphabet returns the complementing alphabet.
func (s *Sequence) Alphabet() alphabet.Complementor { return s.alpha }

// Annotations returns the attached features.
func (s *Sequence) Annotations() *annotation.Set { return s.annots }

func (s *Sequence) String() string { return string(s.data) }

// AddFeature attaches an annotatable feature over intervals.
func (s *Sequence) AddFeature(bioType, name string, intervals ...[2]int) (*annotation.Feature, error) {
	return annotation.AddFeature(s, bioType, name, intervals...)
}

// SliceByMap implements annotation.Container. Reversed spans read the
// reverse complement; lost spans fail with annotation.ErrRangeIncomplete.
func (s *Sequence) SliceByMap(m *location.Map) (annotation.Container, error) {
	return s.sliceByMap(m)
}

func (s *Sequence) sliceByMap(m *location.Map) (*Sequence, error) {
	if m.ParentLength() != s.Len() {
		return nil, fmt.Errorf("map %v on %s of length %d: %w", m, s.name, s.Len(), annotation.ErrLengthMismatch)
	}
	data := make([]byte, 0, m.Len())
	for _, sp := range m.Spans() {
		if sp.Lost {
			return nil, fmt.Errorf("slice %v of %s: %w", m, s.name, annotation.ErrRangeIncomplete)
		}
		data = s.appendSpan(data, sp)
	}
	out := newSequence(s.name, data, s.alpha)
	if err := out.annots.Attach(annotation.SlicedAnnotations(s, out, m)...); err != nil {
		return nil, err
	}
	return out, nil
}

// appendSpan appends the residues of a located span, reverse complemented
// for reversed spans.
func (s *Sequence) appendSpan(dst []byte, sp location.Span) []byte {
	if !sp.Reverse {
		return append(dst, s.data[sp.Start:sp.End]...)
	}
	for i := sp.End - 1; i >= sp.Start; i-- {
		dst = append(dst, s.complement(s.data[i]))
	}
	return dst
}

func (s *Sequence) complement(b byte) byte {
	c, _ := s.alpha.Complement(alphabet.Letter(b))
	return byte(c)
}

// Slice returns the region selected by idx with overlapping annotations remapped.
func (s *Sequence) Slice(idx annotation.Index) (*Sequence, error) {
	m, err := annotation.AsMap(s, idx)
	if err != nil {
		return nil, err
	}
	return s.sliceByMap(m)
}

// Concat joins s and others in order. Annotations of every part are
// shifted onto the result.
func (s *Sequence) Concat(others ...*Sequence) (*Sequence, error) {
	parts := append([]*Sequence{s}, others...)
	n := 0
	for _, p := range parts {
		n += p.Len()
	}
	data := make([]byte, 0, n)
	for _, p := range parts {
		data = append(data, p.data...)
	}
	out := newSequence(s.name, data, s.alpha)

	offset := 0
	for _, p := range parts {
		shifted, err := annotation.ShiftedAnnotations(p, out, offset)
		if err != nil {
			return nil, err
		}
		if err := out.annots.Attach(shifted...); err != nil {
			return nil, err
		}
		offset += p.Len()
	}
	return out, nil
}

// ReverseComplement returns the reverse complement with annotations
// mirrored onto it.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	data := make([]byte, len(s.data))
	for i, b := range s.data {
		data[len(s.data)-1-i] = s.complement(b)
	}
	out := newSequence(s.name, data, s.alpha)
	if err := annotation.NucleicReversedOn(s, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByAnnotation returns the region of every attached feature matching
// bioType and name, each named after its feature. A feature with lost
// spans fails with annotation.ErrRangeIncomplete unless ignorePartial is
// set, in which case it is skipped.
func (s *Sequence) GetByAnnotation(bioType, name string, ignorePartial bool) ([]*Sequence, error) {
	features, err := matchingComplete(s.annots, bioType, name, ignorePartial)
	if err != nil {
		return nil, err
	}
	out := make([]*Sequence, 0, len(features))
	for _, f := range features {
		part, err := s.sliceByMap(f.Map())
		if err != nil {
			return nil, err
		}
		part.name = f.Name()
		out = append(out, part)
	}
	return out, nil
}

func matchingComplete(set *annotation.Set, bioType, name string, ignorePartial bool) ([]*annotation.Feature, error) {
	features, err := set.Matching(bioType, name, false)
	if err != nil {
		return nil, err
	}
	out := features[:0]
	for _, f := range features {
		if !f.Map().Complete() {
			if ignorePartial {
				continue
			}
			return nil, fmt.Errorf("%s: %w", f, annotation.ErrRangeIncomplete)
		}
		out = append(out, f)
	}
	return out, nil
}
