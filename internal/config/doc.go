// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package config loads seqnote configuration with koanf.

Sources are layered, later ones overriding earlier ones:

  - built-in defaults (defaultConfig)
  - an optional YAML file: $SEQNOTE_CONFIG, else config.yaml / config.yml
  - environment variables listed below

# Environment Variables

Store:
  - SEQNOTE_STORE_PATH: DuckDB database path, ":memory:" for in-process (default: :memory:)
  - SEQNOTE_STORE_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - SEQNOTE_STORE_THREADS: DuckDB worker threads, 0 = NumCPU (default: 0)
  - SEQNOTE_STORE_BATCH_SIZE: records validated per batch during load (default: 1000)
  - SEQNOTE_STORE_ON_MALFORMED: abort or skip (default: abort)

Cache:
  - SEQNOTE_CACHE_ENABLED (default: true)
  - SEQNOTE_CACHE_CAPACITY (default: 256)
  - SEQNOTE_CACHE_TTL (default: 5m)

Archive:
  - SEQNOTE_ARCHIVE_PATH: Badger directory (default: ./data/archive)
  - SEQNOTE_ARCHIVE_IN_MEMORY (default: false)
  - SEQNOTE_ARCHIVE_SYNC_WRITES (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
	logging.Init(cfg.Logging.LoggerConfig())
*/
package config
