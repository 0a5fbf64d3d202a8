// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/tomtom215/seqnote/internal/annotation"
	"github.com/tomtom215/seqnote/internal/validation"
)

// Record is implemented by the row types a Store can hold.
type Record interface {
	GFFRecord | GenBankRecord

	validate() error
	insertArgs() ([]interface{}, error)
	// groupKey returns the key rows are grouped under by FindRecords.
	// An empty key means the row stands alone.
	groupKey() string
	feature() FeatureRecord
}

// GFFRecord is one GFF3 feature line. Start and End are 0-based, half-open.
type GFFRecord struct {
	SeqID      string `validate:"required"`
	Source     string
	Type       string   `validate:"required"`
	Start      int      `validate:"gte=0"`
	End        int      `validate:"gtefield=Start"`
	Score      *float64 // nil when the score column is "."
	Strand     string   `validate:"strand"`
	Phase      string   `validate:"omitempty,oneof=0 1 2 ."`
	Attributes map[string]string
}

// ID returns the ID attribute, or "" when absent.
func (r GFFRecord) ID() string {
	return r.Attributes["ID"]
}

// Parent returns the Parent attribute, or "" when absent.
func (r GFFRecord) Parent() string {
	return r.Attributes["Parent"]
}

func (r GFFRecord) validate() error {
	if verr := validation.ValidateStruct(r); verr != nil {
		return verr
	}
	return nil
}

func (r GFFRecord) insertArgs() ([]interface{}, error) {
	attrs := r.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	// stored unescaped: identifier LIKE matches compare the raw text
	blob, err := json.MarshalNoEscape(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attributes: %w", err)
	}

	var score interface{}
	if r.Score != nil {
		score = *r.Score
	}

	return []interface{}{
		r.SeqID, r.Source, r.Type, r.Start, r.End, score, r.Strand, r.Phase, string(blob),
	}, nil
}

// groupKey keys rows by ID. Rows without an ID group with their siblings of
// the same type under Parent, in a separate namespace from IDs so a parent
// row never absorbs its children.
func (r GFFRecord) groupKey() string {
	if id := r.ID(); id != "" {
		return "ID\x00" + id
	}
	if parent := r.Parent(); parent != "" {
		return "Parent\x00" + parent + "\x00" + r.Type
	}
	return ""
}

func (r GFFRecord) feature() FeatureRecord {
	name := r.ID()
	if name == "" {
		name = r.Parent()
	}
	return FeatureRecord{
		Name:   name,
		Type:   r.Type,
		Spans:  [][2]int{{r.Start, r.End}},
		Strand: r.Strand,
	}
}

// GenBankRecord is one GenBank feature carrying a locus tag. Spans are
// 0-based, half-open, in the order the location lists them.
type GenBankRecord struct {
	LocusID  string   `validate:"required"`
	Type     string   `validate:"required"`
	LocusTag string   `validate:"required"`
	Spans    [][2]int `validate:"required,min=1"`
	Strand   string   `validate:"strand"`
}

// Start returns the start of the first span.
func (r GenBankRecord) Start() int {
	if len(r.Spans) == 0 {
		return 0
	}
	return r.Spans[0][0]
}

// End returns the end of the last span.
func (r GenBankRecord) End() int {
	if len(r.Spans) == 0 {
		return 0
	}
	return r.Spans[len(r.Spans)-1][1]
}

func (r GenBankRecord) validate() error {
	if verr := validation.ValidateStruct(r); verr != nil {
		return verr
	}
	for _, s := range r.Spans {
		if s[0] < 0 || s[1] < s[0] {
			return fmt.Errorf("span %d:%d is not a valid interval", s[0], s[1])
		}
	}
	return nil
}

func (r GenBankRecord) insertArgs() ([]interface{}, error) {
	blob, err := json.Marshal(r.Spans)
	if err != nil {
		return nil, fmt.Errorf("failed to encode spans: %w", err)
	}
	return []interface{}{
		r.LocusID, r.Type, string(blob), r.LocusTag, r.Start(), r.End(), r.Strand,
	}, nil
}

func (r GenBankRecord) groupKey() string {
	return r.LocusTag + "\x00" + r.Type
}

func (r GenBankRecord) feature() FeatureRecord {
	spans := make([][2]int, len(r.Spans))
	copy(spans, r.Spans)
	return FeatureRecord{
		Name:   r.LocusTag,
		Type:   r.Type,
		Spans:  spans,
		Strand: r.Strand,
	}
}

// FeatureRecord describes one feature assembled from one or more rows.
type FeatureRecord struct {
	Name   string
	Type   string
	Spans  [][2]int
	Strand string
}

// AddTo builds the feature on parent and attaches it. Minus-strand records
// become reversed features read from their last span to their first.
func (r FeatureRecord) AddTo(parent annotation.Annotatable) (*annotation.Feature, error) {
	intervals := r.Spans
	if r.Strand == "-" {
		intervals = make([][2]int, len(r.Spans))
		for i, s := range r.Spans {
			intervals[len(r.Spans)-1-i] = [2]int{s[1], s[0]}
		}
	}
	return annotation.AddFeature(parent, r.Type, r.Name, intervals...)
}
