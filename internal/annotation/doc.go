// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package annotation implements features attached to sequence-like
containers and the rules that keep them positioned as containers change.

A Feature carries a location.Map relative to its parent and a base map
relative to the root container found by following parent links. Features
come in a closed set of kinds:

  - KindPlain: a located region; slicing one yields a child of the feature
  - KindAnnotatable: a region that can host sub-features of its own
  - KindSource: a region placed from another accession, with a second map
    onto that accession
  - KindVariable: (x1, x2, y) measurements over a region
  - KindSimpleVariable: one value per position of the region

Containers implement Annotatable by owning a Set. A Set enforces single
ownership: a feature can only be attached to the Set of its own parent and
only once.

# Propagation

Containers call SlicedAnnotations when they are sliced, ShiftedAnnotations
when they are joined and NucleicReversedOn when they are reverse
complemented. Each returns fresh features for the new container; the
originals stay attached where they were.

	f, err := annotation.AddFeature(seq, "CDS", "gene1", [2]int{15, 25})
	sub, err := seq.Slice(annotation.Between(10, 29))
	cds, err := sub.Annotations().Matching("CDS", "", false)
*/
package annotation
