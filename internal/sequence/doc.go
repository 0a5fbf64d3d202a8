// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package sequence provides the annotated containers: a nucleic acid Sequence
and an Alignment of gapped Aligned rows.

Both implement annotation.Container, so features attached to them follow
every slice, concatenation and reverse complement:

	seq := sequence.New("s1", "AACCCAAAATTTTTTGGGGGGGGGGCCCC")
	seq.AddFeature("CDS", "cds1", [2]int{15, 25})

	head, _ := seq.Slice(annotation.To(5))
	tail, _ := seq.Slice(annotation.From(10))
	joined, _ := head.Concat(tail)
	cds, _ := joined.GetByAnnotation("CDS", "", false) // GGGGGGGGGG

An Aligned row pairs an ungapped Sequence with a map from alignment columns
onto it; gap columns are lost spans of that map. Annotations can live on the
alignment itself or on the row sequences, and move between the two frames
with Alignment.ProjectAnnotation and Alignment.AnnotationsFromSeq.
*/
package sequence
