// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package location implements the coordinate map algebra used to keep
annotations valid while sequences are sliced, joined, reverse-complemented
and projected between frames.

A Map is an ordered list of Spans translating a child coordinate frame onto
a parent frame of ParentLength positions. Child position 0 is the first
position of the first span in traversal order. A reversed Span is traversed
from its End down to its Start. A lost Span (a gap) occupies child
positions but has no parent coordinates, as happens for alignment gap
columns or for parts of a feature that fall outside its sequence.

# Composition

Indexing a map by another map is Compose:

	seqMap, _ := location.New(29, [2]int{15, 25})   // CDS on a 29 bp sequence
	sub, _ := location.New(10, [2]int{2, 6})        // positions 2..6 of the CDS
	got, _ := seqMap.Compose(sub)                   // [17:21]/29

Compose clips at span boundaries and carries gaps through, so slicing a
container reslices every feature attached to it.

Maps are immutable. Every operation returns a new Map and the receiver can
be shared freely.
*/
package location
