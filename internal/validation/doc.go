// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

// Package validation wraps go-playground/validator for seqnote.
//
// A single validator instance is shared process-wide. It is used to check
// configuration structs after loading and annotation records before they
// are written to the store:
//
//	if verr := validation.ValidateStruct(rec); verr != nil {
//	    return fmt.Errorf("record %d: %w", i, verr)
//	}
//
// In addition to the built-in tags the validator knows "strand", which
// accepts the GFF strand symbols "+", "-", "." and "?".
package validation
