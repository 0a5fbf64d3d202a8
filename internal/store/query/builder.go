// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package query

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddEquals adds "column = ?" when value is not empty.
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value != "" {
		wb.AddClause(column+" = ?", value)
	}
	return wb
}

// AddContains adds "column LIKE ?" matching value anywhere in the column
// when value is not empty. LIKE wildcards in value are not escaped.
func (wb *WhereBuilder) AddContains(column, value string) *WhereBuilder {
	if value != "" {
		wb.AddClause(column+" LIKE ?", "%"+value+"%")
	}
	return wb
}

// AddPositionRange adds "startColumn >= ?" and "endColumn < ?" for each
// bound that is not nil.
func (wb *WhereBuilder) AddPositionRange(startColumn string, start *int, endColumn string, end *int) *WhereBuilder {
	if start != nil {
		wb.AddClause(startColumn+" >= ?", *start)
	}
	if end != nil {
		wb.AddClause(endColumn+" < ?", *end)
	}
	return wb
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// Where returns the built clause as a squirrel predicate.
func (wb *WhereBuilder) Where() squirrel.Sqlizer {
	whereClause, args := wb.Build()
	return squirrel.Expr(whereClause, args...)
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}
