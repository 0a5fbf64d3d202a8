// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

// Package query provides SQL WHERE clause building for the annotation store.
//
// # Overview
//
// The WhereBuilder is a fluent interface for parameterized filters over the
// annotation tables. Optional filters given as nil pointers or empty strings
// are skipped, so a query struct can be translated field by field:
//
//	wb := query.NewWhereBuilder()
//	wb.AddEquals("seq_id", q.SeqName)
//	wb.AddEquals("bio_type", q.BioType)
//	wb.AddContains("attributes", q.Identifier)
//	wb.AddPositionRange("start_pos", q.Start, "end_pos", q.End)
//	whereClause, args := wb.Build()
//	// Result: "seq_id = ? AND bio_type = ? AND attributes LIKE ? AND start_pos >= ? AND end_pos < ?"
//
// # Range Semantics
//
// AddPositionRange selects rows with start >= lower AND end < upper. The
// upper bound is exclusive on the row end, so a row ending exactly at the
// bound is left out.
//
// # Squirrel Integration
//
// Where returns the clause as a squirrel.Sqlizer for use with
// squirrel.Select:
//
//	sql, args, err := squirrel.Select("*").From("gff").Where(wb.Where()).ToSql()
//
// # Thread Safety
//
// WhereBuilder is not safe for concurrent use. Create a new builder per query.
package query
