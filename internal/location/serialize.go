// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package location

import "fmt"

// SpanDoc is the serialized form of a Span. Lost spans carry only Gap.
type SpanDoc struct {
	Start  int    `json:"start,omitempty"`
	End    int    `json:"end,omitempty"`
	Strand string `json:"strand,omitempty"`
	Gap    int    `json:"gap,omitempty"`
}

// MapDoc is the serialized form of a Map.
type MapDoc struct {
	ParentLength int       `json:"parent_length"`
	Spans        []SpanDoc `json:"spans"`
}

// Doc returns the serialized form of m.
func (m *Map) Doc() MapDoc {
	doc := MapDoc{ParentLength: m.parentLength, Spans: make([]SpanDoc, len(m.spans))}
	for i, s := range m.spans {
		switch {
		case s.Lost:
			doc.Spans[i] = SpanDoc{Gap: s.Len()}
		case s.Reverse:
			doc.Spans[i] = SpanDoc{Start: s.Start, End: s.End, Strand: "-"}
		default:
			doc.Spans[i] = SpanDoc{Start: s.Start, End: s.End, Strand: "+"}
		}
	}
	return doc
}

// FromDoc rebuilds a map from its serialized form.
func FromDoc(doc MapDoc) (*Map, error) {
	spans := make([]Span, len(doc.Spans))
	for i, sd := range doc.Spans {
		switch {
		case sd.Gap > 0:
			spans[i] = Gap(sd.Gap)
		case sd.Strand == "-":
			spans[i] = Span{Start: sd.Start, End: sd.End, Reverse: true}
		case sd.Strand == "+" || sd.Strand == "":
			spans[i] = Span{Start: sd.Start, End: sd.End}
		default:
			return nil, fmt.Errorf("span %d: unknown strand %q", i, sd.Strand)
		}
	}
	return FromSpans(doc.ParentLength, spans...)
}
