// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import "github.com/biogo/biogo/feat"

var (
	_ feat.Feature  = (*Feature)(nil)
	_ feat.Orienter = (*Feature)(nil)
)

// Start returns the lowest parent position covered.
func (f *Feature) Start() int { return f.m.Start() }

// End returns one past the highest parent position covered.
func (f *Feature) End() int { return f.m.End() }

// Len returns the length of the feature's own frame, gaps included.
func (f *Feature) Len() int { return f.m.Len() }

// Name returns the feature name.
func (f *Feature) Name() string { return f.name }

// Description returns the feature type.
func (f *Feature) Description() string { return f.bioType }

// Location returns the parent when it is itself a biogo feature.
func (f *Feature) Location() feat.Feature {
	if loc, ok := f.parent.(feat.Feature); ok {
		return loc
	}
	return nil
}

// Orientation reports the strand of the feature on its parent.
func (f *Feature) Orientation() feat.Orientation { return f.m.Orientation() }
