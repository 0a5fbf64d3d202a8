// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seqnote/internal/location"
)

// DocumentVersion is written into every serialized feature.
const DocumentVersion = "1.0"

// Document is the serialized form of a feature and its sub-features.
type Document struct {
	Type         string          `json:"type"`
	Version      string          `json:"version"`
	Construction ConstructionDoc `json:"annotation_construction"`
	Annotations  []Document      `json:"annotations,omitempty"`
}

// ConstructionDoc is the serialized form of a Construction.
type ConstructionDoc struct {
	Type      string           `json:"type"`
	Name      string           `json:"name"`
	Map       location.MapDoc  `json:"map"`
	Accession string           `json:"accession,omitempty"`
	Basemap   *location.MapDoc `json:"basemap,omitempty"`
	Points    []Point          `json:"xxy_list,omitempty"`
	Data      []float64        `json:"data,omitempty"`
}

// Document returns the serialized form of f.
func (f *Feature) Document() Document {
	doc := Document{
		Type:    f.kind.String(),
		Version: DocumentVersion,
		Construction: ConstructionDoc{
			Type:      f.bioType,
			Name:      f.name,
			Map:       f.m.Doc(),
			Accession: f.accession,
			Points:    f.Points(),
			Data:      f.Data(),
		},
	}
	if f.basemap != nil {
		bm := f.basemap.Doc()
		doc.Construction.Basemap = &bm
	}
	for _, sub := range f.subs.All() {
		doc.Annotations = append(doc.Annotations, sub.Document())
	}
	return doc
}

// MarshalJSON encodes the feature as its Document.
func (f *Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Document())
}

// FromDocument rebuilds an unattached feature on parent. Sub-features are
// rebuilt and attached to it.
func FromDocument(parent Annotatable, doc Document) (*Feature, error) {
	kind, err := ParseKind(doc.Type)
	if err != nil {
		return nil, err
	}
	m, err := location.FromDoc(doc.Construction.Map)
	if err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	c := Construction{
		Kind:      kind,
		Type:      doc.Construction.Type,
		Name:      doc.Construction.Name,
		Map:       m,
		Accession: doc.Construction.Accession,
		Points:    doc.Construction.Points,
		Data:      doc.Construction.Data,
	}
	if doc.Construction.Basemap != nil {
		if c.Basemap, err = location.FromDoc(*doc.Construction.Basemap); err != nil {
			return nil, fmt.Errorf("decode basemap: %w", err)
		}
	}

	f, err := New(parent, c)
	if err != nil {
		return nil, err
	}
	if len(doc.Annotations) > 0 && f.subs == nil {
		return nil, fmt.Errorf("%v with sub-annotations: %w", kind, ErrFeatureKind)
	}
	for _, subDoc := range doc.Annotations {
		sub, err := FromDocument(f, subDoc)
		if err != nil {
			return nil, err
		}
		if err := f.subs.Attach(sub); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// UnmarshalFeature decodes JSON produced by MarshalJSON into a feature on parent.
func UnmarshalFeature(parent Annotatable, data []byte) (*Feature, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode feature document: %w", err)
	}
	return FromDocument(parent, doc)
}
