// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package config

import (
	"time"

	"github.com/tomtom215/seqnote/internal/logging"
)

// Config holds all seqnote configuration.
type Config struct {
	Store   StoreConfig   `koanf:"store"`
	Cache   CacheConfig   `koanf:"cache"`
	Archive ArchiveConfig `koanf:"archive"`
	Logging LoggingConfig `koanf:"logging"`
}

// Malformed-record policies for StoreConfig.OnMalformed.
const (
	OnMalformedAbort = "abort"
	OnMalformedSkip  = "skip"
)

// StoreConfig holds DuckDB settings for the annotation store.
type StoreConfig struct {
	Path        string `koanf:"path" validate:"required"`
	MaxMemory   string `koanf:"max_memory" validate:"required"`
	Threads     int    `koanf:"threads" validate:"gte=0"`
	BatchSize   int    `koanf:"batch_size" validate:"gte=1,lte=1000000"`
	OnMalformed string `koanf:"on_malformed" validate:"oneof=abort skip"`
}

// CacheConfig controls caching of grouped query results.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Capacity int           `koanf:"capacity" validate:"gte=1"`
	TTL      time.Duration `koanf:"ttl" validate:"gte=0"`
}

// ArchiveConfig holds Badger settings for the feature archive.
type ArchiveConfig struct {
	Path       string `koanf:"path"`
	InMemory   bool   `koanf:"in_memory"`
	SyncWrites bool   `koanf:"sync_writes"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error, disabled.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`

	// Format is the output format: json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	Caller bool `koanf:"caller"`
}

// LoggerConfig converts the section into a logging.Config.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}
