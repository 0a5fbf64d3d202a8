// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tomtom215/seqnote/internal/metrics"
	"github.com/tomtom215/seqnote/internal/store/query"
)

// Query selects rows. Empty strings and nil bounds are unconstrained.
// End is exclusive of rows ending at End: a row matches when end_pos < End.
type Query struct {
	SeqName    string
	BioType    string
	Identifier string // substring of the GFF attributes or the GenBank locus tag
	Start      *int
	End        *int
	Strand     string
}

func (q Query) validate() error {
	if q.BioType == "" && q.Identifier == "" {
		return ErrInvalidQuery
	}
	return nil
}

func (q Query) cacheKey() string {
	bound := func(p *int) string {
		if p == nil {
			return "*"
		}
		return strconv.Itoa(*p)
	}
	return strings.Join([]string{
		q.SeqName, q.BioType, q.Identifier, bound(q.Start), bound(q.End), q.Strand,
	}, "\x1f")
}

func (s *Store[R]) selectSQL(q Query) (string, []interface{}, int, error) {
	if err := q.validate(); err != nil {
		return "", nil, 0, err
	}
	sc := s.schema
	wb := query.NewWhereBuilder().
		AddEquals(sc.seqColumn, q.SeqName).
		AddEquals(sc.typeColumn, q.BioType).
		AddContains(sc.identColumn, q.Identifier).
		AddPositionRange("start_pos", q.Start, "end_pos", q.End).
		AddEquals(sc.strandColumn, q.Strand)

	stmt, args, err := squirrel.Select(sc.columns...).
		From(sc.table).
		Where(wb.Where()).
		OrderBy("rowid").
		ToSql()
	return stmt, args, wb.Count(), err
}

// Query returns the matching rows in insertion order.
func (s *Store[R]) Query(ctx context.Context, q Query) (rows []R, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("query", s.schema.table, time.Since(start), err)
	}()

	stmt, args, filters, err := s.selectSQL(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err = queryAndScan(ctx, s.conn, stmt, args, s.schema.scan)
	if err != nil {
		s.contextLogger(ctx).Error().Err(err).Int("filters", filters).Msg("Store query failed")
		return nil, fmt.Errorf("failed to query %s: %w", s.schema.table, err)
	}
	s.contextLogger(ctx).Debug().Int("filters", filters).Int("rows", len(rows)).Msg("Store query completed")
	return rows, nil
}

// FindRecords groups the rows matching q into feature descriptors.
//
// GFF rows group on their ID attribute; rows without one group with siblings
// of the same type under their Parent, and rows with neither stand alone. GenBank rows group on locus tag and type. Groups keep
// first-seen order and their spans keep row order.
func (s *Store[R]) FindRecords(ctx context.Context, q Query) (records []FeatureRecord, err error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	key := q.cacheKey()
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.RecordCacheLookup(true)
			return cloneRecords(cached), nil
		}
		metrics.RecordCacheLookup(false)
	}

	rows, err := s.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	records = groupRows(rows)
	metrics.RecordStoreQuery("find_records", s.schema.table, time.Since(start), nil)

	if s.cache != nil {
		s.cache.CleanupExpired()
		s.cache.Add(key, cloneRecords(records))
		_, _, size := s.cache.Stats()
		metrics.RecordCacheSize(s.schema.table, size)
	}
	return records, nil
}

func groupRows[R Record](rows []R) []FeatureRecord {
	records := make([]FeatureRecord, 0, len(rows))
	byKey := make(map[string]int)
	for _, row := range rows {
		key := row.groupKey()
		if key == "" {
			records = append(records, row.feature())
			continue
		}
		if i, ok := byKey[key]; ok {
			records[i].Spans = append(records[i].Spans, row.feature().Spans...)
			continue
		}
		byKey[key] = len(records)
		records = append(records, row.feature())
	}
	return records
}

func cloneRecords(in []FeatureRecord) []FeatureRecord {
	out := make([]FeatureRecord, len(in))
	for i, r := range in {
		out[i] = r
		out[i].Spans = slices.Clone(r.Spans)
	}
	return out
}

// DescribeRequest selects which distinct values Describe reports.
type DescribeRequest struct {
	SeqNames    bool
	BioTypes    bool
	Identifiers bool
}

// Description holds sorted distinct values. Fields not requested are nil.
type Description struct {
	SeqNames    []string
	BioTypes    []string
	Identifiers []string
}

// Describe reports distinct sequence names, bio types and identifiers.
// GFF identifiers are ID attributes; GenBank identifiers are locus tags.
func (s *Store[R]) Describe(ctx context.Context, req DescribeRequest) (desc Description, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("describe", s.schema.table, time.Since(start), err)
	}()

	ctx, cancel := ensureContext(ctx)
	defer cancel()
	defer func() {
		if err != nil {
			s.contextLogger(ctx).Error().Err(err).Msg("Describe failed")
		}
	}()

	sc := s.schema
	if req.SeqNames {
		if desc.SeqNames, err = s.distinct(ctx, sc.seqColumn, nil); err != nil {
			return Description{}, err
		}
	}
	if req.BioTypes {
		if desc.BioTypes, err = s.distinct(ctx, sc.typeColumn, nil); err != nil {
			return Description{}, err
		}
	}
	if req.Identifiers {
		if desc.Identifiers, err = s.distinct(ctx, sc.identColumn, sc.identifiers); err != nil {
			return Description{}, err
		}
	}
	return desc, nil
}

func (s *Store[R]) distinct(ctx context.Context, column string, extract func(string) ([]string, error)) ([]string, error) {
	stmt := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL", column, s.schema.table, column)
	raw, err := queryAndScan(ctx, s.conn, stmt, nil, func(rows *sql.Rows) (string, error) {
		var v string
		err := rows.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s.%s: %w", s.schema.table, column, err)
	}

	values := raw
	if extract != nil {
		values = make([]string, 0, len(raw))
		for _, r := range raw {
			ids, err := extract(r)
			if err != nil {
				return nil, err
			}
			values = append(values, ids...)
		}
	}

	slices.Sort(values)
	return slices.Compact(values), nil
}
