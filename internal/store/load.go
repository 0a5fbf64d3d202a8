// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/tomtom215/seqnote/internal/config"
	"github.com/tomtom215/seqnote/internal/logging"
	"github.com/tomtom215/seqnote/internal/metrics"
)

// LoadStats summarizes one Load call.
type LoadStats struct {
	Loaded  int
	Skipped int
}

// Load inserts records in a single transaction. A nil ctx is treated as
// context.Background; a ctx without a correlation ID gets a fresh one.
// Records that fail to parse, validate or encode either abort the load, rolling it back with ErrMalformedRecord,
// or are skipped and counted, depending on store.on_malformed.
// Duplicate records are stored as duplicates.
func (s *Store[R]) Load(ctx context.Context, records iter.Seq2[R, error]) (stats LoadStats, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQuery("load", s.schema.table, time.Since(start), err)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	logger := s.contextLogger(ctx)
	logger.Info().Msg("Loading annotation records")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Warn().Err(rbErr).Msg("Failed to roll back load")
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.schema.insertSQL())
	if err != nil {
		return stats, fmt.Errorf("failed to prepare %s insert: %w", s.schema.table, err)
	}
	defer closeWithLog(stmt, "prepared statement")

	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	batch := make([][]interface{}, 0, batchSize)

	flush := func() error {
		for _, args := range batch {
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert %s record: %w", s.schema.table, err)
			}
		}
		stats.Loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	index := 0
	for rec, recErr := range records {
		index++
		var args []interface{}
		if recErr == nil {
			args, recErr = s.prepare(rec)
		}
		if recErr != nil {
			if s.cfg.OnMalformed != config.OnMalformedSkip {
				return stats, fmt.Errorf("record %d: %w: %w", index, ErrMalformedRecord, recErr)
			}
			logger.Warn().Int("record", index).Err(recErr).Msg("Skipping malformed record")
			stats.Skipped++
			continue
		}

		batch = append(batch, args)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := flush(); err != nil {
		return stats, err
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit load: %w", err)
	}
	committed = true

	s.invalidate()
	metrics.RecordLoad(s.schema.table, stats.Loaded, stats.Skipped)

	logger.Info().
		Int("loaded", stats.Loaded).
		Int("skipped", stats.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Annotation records loaded")

	return stats, nil
}

// prepare validates rec and encodes its insert arguments.
func (s *Store[R]) prepare(rec R) ([]interface{}, error) {
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return s.encode(rec)
}

// LoadSlice loads records from a slice.
func (s *Store[R]) LoadSlice(ctx context.Context, records []R) (LoadStats, error) {
	return s.Load(ctx, func(yield func(R, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	})
}
