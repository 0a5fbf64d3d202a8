// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import "errors"

var (
	// ErrOutOfBounds is returned when an interval lies wholly outside its parent.
	ErrOutOfBounds = errors.New("location outside parent")

	// ErrFrameMismatch is returned when two maps are combined on different frames.
	ErrFrameMismatch = errors.New("coordinate frames differ")

	// ErrUninvertible is returned by Inverse for maps with overlapping spans.
	ErrUninvertible = errors.New("map has overlapping spans and cannot be inverted")
)
