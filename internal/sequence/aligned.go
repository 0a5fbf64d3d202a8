// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package sequence

import (
	"bytes"
	"fmt"

	"github.com/tomtom215/seqnote/internal/annotation"
	"github.com/tomtom215/seqnote/internal/location"
)

// GapChar marks alignment columns a row has no residue for.
const GapChar = '-'

// Aligned is one alignment row: an ungapped sequence and a map from
// alignment columns onto it. Gap columns are lost spans of the map.
type Aligned struct {
	seq *Sequence
	m   *location.Map
}

// NewAligned places seq in an alignment through m.
func NewAligned(seq *Sequence, m *location.Map) (*Aligned, error) {
	if m.ParentLength() != seq.Len() {
		return nil, fmt.Errorf("row map %v for %s of length %d: %w", m, seq.Name(), seq.Len(), annotation.ErrLengthMismatch)
	}
	return &Aligned{seq: seq, m: m}, nil
}

// ParseAligned builds a DNA row from its gapped text.
func ParseAligned(name, gapped string) *Aligned {
	var (
		residues []byte
		spans    []location.Span
	)
	for i := 0; i < len(gapped); {
		j := i
		gap := gapped[i] == GapChar
		for j < len(gapped) && (gapped[j] == GapChar) == gap {
			j++
		}
		if gap {
			spans = append(spans, location.Gap(j-i))
		} else {
			spans = append(spans, location.Span{Start: len(residues), End: len(residues) + j - i})
			residues = append(residues, gapped[i:j]...)
		}
		i = j
	}
	seq := New(name, string(residues))
	m, err := location.FromSpans(seq.Len(), spans...)
	if err != nil {
		// spans lie within residues by construction
		panic(fmt.Sprintf("sequence: parse aligned %s: %v", name, err))
	}
	return &Aligned{seq: seq, m: m}
}

// Name returns the row name.
func (a *Aligned) Name() string { return a.seq.Name() }

// Seq returns the ungapped sequence.
func (a *Aligned) Seq() *Sequence { return a.seq }

// Map returns the map from alignment columns onto Seq.
func (a *Aligned) Map() *location.Map { return a.m }

// Len returns the number of alignment columns.
func (a *Aligned) Len() int { return a.m.Len() }

// String renders the row with gap columns as GapChar.
func (a *Aligned) String() string {
	var b bytes.Buffer
	b.Grow(a.m.Len())
	for _, sp := range a.m.Spans() {
		if sp.Lost {
			b.Write(bytes.Repeat([]byte{GapChar}, sp.Len()))
			continue
		}
		b.Write(a.seq.appendSpan(nil, sp))
	}
	return b.String()
}

// sliced returns the columns of a selected by m, a map on the column frame.
func (a *Aligned) sliced(m *location.Map) (*Aligned, error) {
	composed, err := a.m.Compose(m)
	if err != nil {
		return nil, err
	}
	return &Aligned{seq: a.seq, m: composed}, nil
}

// concat appends the columns of b. Rows over the same sequence share it;
// otherwise the sequences are joined.
func (a *Aligned) concat(b *Aligned) (*Aligned, error) {
	if a.seq == b.seq {
		m, err := location.Concat(a.m, b.m)
		if err != nil {
			return nil, err
		}
		return &Aligned{seq: a.seq, m: m}, nil
	}
	seq, err := a.seq.Concat(b.seq)
	if err != nil {
		return nil, err
	}
	am, err := a.m.Shifted(0, seq.Len())
	if err != nil {
		return nil, err
	}
	bm, err := b.m.Shifted(a.seq.Len(), seq.Len())
	if err != nil {
		return nil, err
	}
	m, err := location.Concat(am, bm)
	if err != nil {
		return nil, err
	}
	return &Aligned{seq: seq, m: m}, nil
}

// reverseComplement returns the row read from the last column to the
// first on the reverse complement of its sequence.
func (a *Aligned) reverseComplement() (*Aligned, error) {
	seq, err := a.seq.ReverseComplement()
	if err != nil {
		return nil, err
	}
	return &Aligned{seq: seq, m: a.m.NucleicReversed().Reversed()}, nil
}
