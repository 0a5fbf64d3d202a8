// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"database/sql"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// schema describes the table backing one record kind.
type schema[R Record] struct {
	table   string
	ddl     []string
	columns []string

	seqColumn    string
	typeColumn   string
	identColumn  string
	strandColumn string

	scan func(*sql.Rows) (R, error)
	// identifiers extracts the identifiers Describe reports from one
	// distinct value of identColumn.
	identifiers func(raw string) ([]string, error)
}

func (s *schema[R]) insertSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(s.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(s.columns, ", "), placeholders)
}

var gffSchema = &schema[GFFRecord]{
	table: "gff",
	ddl: []string{
		`CREATE TABLE IF NOT EXISTS gff (
			seq_id VARCHAR NOT NULL,
			source VARCHAR,
			bio_type VARCHAR NOT NULL,
			start_pos BIGINT NOT NULL,
			end_pos BIGINT NOT NULL,
			score DOUBLE,
			strand VARCHAR,
			phase VARCHAR,
			attributes VARCHAR
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gff_type ON gff(bio_type)`,
		`CREATE INDEX IF NOT EXISTS idx_gff_seq ON gff(seq_id)`,
	},
	columns: []string{
		"seq_id", "source", "bio_type", "start_pos", "end_pos",
		"score", "strand", "phase", "attributes",
	},
	seqColumn:    "seq_id",
	typeColumn:   "bio_type",
	identColumn:  "attributes",
	strandColumn: "strand",
	scan:         scanGFF,
	identifiers: func(raw string) ([]string, error) {
		attrs, err := decodeAttributes(raw)
		if err != nil {
			return nil, err
		}
		if id := attrs["ID"]; id != "" {
			return []string{id}, nil
		}
		return nil, nil
	},
}

var genbankSchema = &schema[GenBankRecord]{
	table: "genbank",
	ddl: []string{
		`CREATE TABLE IF NOT EXISTS genbank (
			locus_id VARCHAR NOT NULL,
			bio_type VARCHAR NOT NULL,
			spans VARCHAR NOT NULL,
			locus_tag VARCHAR NOT NULL,
			start_pos BIGINT NOT NULL,
			end_pos BIGINT NOT NULL,
			strand VARCHAR
		)`,
		`CREATE INDEX IF NOT EXISTS idx_genbank_type ON genbank(bio_type)`,
		`CREATE INDEX IF NOT EXISTS idx_genbank_tag ON genbank(locus_tag)`,
	},
	columns: []string{
		"locus_id", "bio_type", "spans", "locus_tag", "start_pos", "end_pos", "strand",
	},
	seqColumn:    "locus_id",
	typeColumn:   "bio_type",
	identColumn:  "locus_tag",
	strandColumn: "strand",
	scan:         scanGenBank,
	identifiers: func(raw string) ([]string, error) {
		// composite tags such as "gene1,gene2" are reported as stored
		return []string{raw}, nil
	},
}

func scanGFF(rows *sql.Rows) (GFFRecord, error) {
	var (
		r      GFFRecord
		source sql.NullString
		score  sql.NullFloat64
		strand sql.NullString
		phase  sql.NullString
		attrs  sql.NullString
	)
	if err := rows.Scan(&r.SeqID, &source, &r.Type, &r.Start, &r.End, &score, &strand, &phase, &attrs); err != nil {
		return r, err
	}
	r.Source = source.String
	r.Strand = strand.String
	r.Phase = phase.String
	if score.Valid {
		v := score.Float64
		r.Score = &v
	}

	decoded, err := decodeAttributes(attrs.String)
	if err != nil {
		return r, err
	}
	r.Attributes = decoded
	return r, nil
}

func scanGenBank(rows *sql.Rows) (GenBankRecord, error) {
	var (
		r          GenBankRecord
		spans      string
		start, end int
		strand     sql.NullString
	)
	if err := rows.Scan(&r.LocusID, &r.Type, &spans, &r.LocusTag, &start, &end, &strand); err != nil {
		return r, err
	}
	r.Strand = strand.String
	if err := json.Unmarshal([]byte(spans), &r.Spans); err != nil {
		return r, fmt.Errorf("failed to decode spans of %s: %w", r.LocusTag, err)
	}
	return r, nil
}

func decodeAttributes(raw string) (map[string]string, error) {
	attrs := map[string]string{}
	if raw == "" {
		return attrs, nil
	}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("failed to decode attributes: %w", err)
	}
	return attrs, nil
}
