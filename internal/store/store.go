// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/seqnote/internal/cache"
	"github.com/tomtom215/seqnote/internal/config"
	"github.com/tomtom215/seqnote/internal/logging"
	"github.com/tomtom215/seqnote/internal/metrics"
)

const defaultQueryTimeout = 30 * time.Second

// Store holds annotation records of one kind in a DuckDB table.
//
// A Store has a single writer. Reads may run concurrently once loading is done.
type Store[R Record] struct {
	conn   *sql.DB
	cfg    config.StoreConfig
	schema *schema[R]
	cache  *cache.LRU[[]FeatureRecord] // nil when caching is disabled
	logger zerolog.Logger

	// encode produces the insert arguments for a validated record
	encode func(R) ([]interface{}, error)
}

// GFFStore holds GFF3 records.
type GFFStore = Store[GFFRecord]

// GenBankStore holds GenBank feature records.
type GenBankStore = Store[GenBankRecord]

// OpenGFF opens a store for GFF3 records. A nil cfg uses config.Default().
func OpenGFF(ctx context.Context, cfg *config.Config) (*GFFStore, error) {
	return open(ctx, cfg, gffSchema)
}

// OpenGenBank opens a store for GenBank feature records. A nil cfg uses config.Default().
func OpenGenBank(ctx context.Context, cfg *config.Config) (*GenBankStore, error) {
	return open(ctx, cfg, genbankSchema)
}

func open[R Record](ctx context.Context, cfg *config.Config, sc *schema[R]) (*Store[R], error) {
	if cfg == nil {
		cfg = config.Default()
	}
	storeCfg := cfg.Store

	numThreads := storeCfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	dbDir := filepath.Dir(storeCfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dbDir, err)
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		storeCfg.Path, numThreads, storeCfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	configureConnectionPool(conn)

	s := &Store[R]{
		conn:   conn,
		cfg:    storeCfg,
		schema: sc,
		logger: logging.WithComponent("store").With().Str("table", sc.table).Logger(),
		encode: func(r R) ([]interface{}, error) { return r.insertArgs() },
	}
	if cfg.Cache.Enabled {
		s.cache = cache.NewLRU[[]FeatureRecord](cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	if err := s.initialize(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	s.logger.Debug().Str("path", storeCfg.Path).Int("threads", numThreads).Msg("Store opened")
	return s, nil
}

func configureConnectionPool(conn *sql.DB) {
	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)
}

// initialize creates the table and its indexes
func (s *Store[R]) initialize(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	for _, stmt := range s.schema.ddl {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create %s schema: %w", s.schema.table, err)
		}
	}
	return nil
}

// ensureContext applies the default query timeout when ctx carries no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// contextLogger returns the store logger tagged with the correlation ID in ctx.
func (s *Store[R]) contextLogger(ctx context.Context) *zerolog.Logger {
	return logging.Ctx(logging.ContextWithLogger(ctx, s.logger))
}

// Table returns the name of the backing table.
func (s *Store[R]) Table() string {
	return s.schema.table
}

// Ping checks that the connection is alive.
func (s *Store[R]) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("store connection is nil")
	}
	return s.conn.PingContext(ctx)
}

// Checkpoint flushes the WAL into the database file.
func (s *Store[R]) Checkpoint(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if _, err := s.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// Count returns the number of rows in the table.
func (s *Store[R]) Count(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.schema.table)
	if err := s.conn.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", s.schema.table, err)
	}
	return n, nil
}

// Close checkpoints and closes the connection.
func (s *Store[R]) Close() error {
	if s.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	if err := s.Checkpoint(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to checkpoint store before close")
	}
	cancel()

	if s.cache != nil {
		s.cache.Clear()
	}

	err := s.conn.Close()
	s.conn = nil
	return err
}

// CacheStats describes the grouped record cache.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Size    int
	HitRate float64 // percentage of lookups served from cache
}

// CacheStats reports the record cache counters. It returns the zero value
// when caching is disabled.
func (s *Store[R]) CacheStats() CacheStats {
	if s.cache == nil {
		return CacheStats{}
	}
	hits, misses, size := s.cache.Stats()
	return CacheStats{Hits: hits, Misses: misses, Size: size, HitRate: s.cache.HitRate()}
}

func (s *Store[R]) invalidate() {
	if s.cache != nil {
		s.cache.Clear()
		metrics.RecordCacheSize(s.schema.table, 0)
	}
}
