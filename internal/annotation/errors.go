// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import "errors"

var (
	// ErrOwnership is returned when attach or detach preconditions fail.
	ErrOwnership = errors.New("annotation ownership violated")

	// ErrRangeIncomplete is returned when a complete slice is requested for
	// a feature whose map has lost spans.
	ErrRangeIncomplete = errors.New("feature range incomplete")

	// ErrAncestryMismatch is returned when a feature used as an index does
	// not descend from the container being indexed.
	ErrAncestryMismatch = errors.New("feature is not a descendant of target")

	// ErrLengthMismatch is returned when a map or copy target does not
	// match the length of the parent.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrFeatureKind is returned for operations a feature kind does not support.
	ErrFeatureKind = errors.New("operation not supported for feature kind")
)
