// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package sequence

import "errors"

var (
	// ErrUnknownSequence is returned when an alignment has no row of the given name.
	ErrUnknownSequence = errors.New("unknown sequence")

	// ErrShape is returned when alignment rows disagree in length or names.
	ErrShape = errors.New("alignment shape mismatch")
)
