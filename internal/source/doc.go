// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

// Package source turns parsed annotation files into store records.
//
// Parsing is done by biogo; this package only converts its features into
// store.GFFRecord values, keeping biogo's 0-based half-open coordinates.
package source
