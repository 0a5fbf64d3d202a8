// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar names the environment variable holding an explicit config file path.
const ConfigPathEnvVar = "SEQNOTE_CONFIG"

func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        ":memory:",
			MaxMemory:   "1GB",
			Threads:     0, // 0 = use runtime.NumCPU()
			BatchSize:   1000,
			OnMalformed: OnMalformedAbort,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 256,
			TTL:      5 * time.Minute,
		},
		Archive: ArchiveConfig{
			Path:       "./data/archive",
			InMemory:   false,
			SyncWrites: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without consulting files or environment.
func Default() *Config {
	return defaultConfig()
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var envMappings = map[string]string{
	"seqnote_store_path":         "store.path",
	"seqnote_store_max_memory":   "store.max_memory",
	"seqnote_store_threads":      "store.threads",
	"seqnote_store_batch_size":   "store.batch_size",
	"seqnote_store_on_malformed": "store.on_malformed",

	"seqnote_cache_enabled":  "cache.enabled",
	"seqnote_cache_capacity": "cache.capacity",
	"seqnote_cache_ttl":      "cache.ttl",

	"seqnote_archive_path":        "archive.path",
	"seqnote_archive_in_memory":   "archive.in_memory",
	"seqnote_archive_sync_writes": "archive.sync_writes",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf keys.
// Unmapped variables return "" and are ignored.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
