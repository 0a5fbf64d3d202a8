// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Store.Path != ":memory:" {
		t.Errorf("Store.Path = %q, want :memory:", cfg.Store.Path)
	}
	if cfg.Store.BatchSize != 1000 {
		t.Errorf("Store.BatchSize = %d, want 1000", cfg.Store.BatchSize)
	}
	if cfg.Store.OnMalformed != OnMalformedAbort {
		t.Errorf("Store.OnMalformed = %q, want abort", cfg.Store.OnMalformed)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SEQNOTE_STORE_PATH", "store.path"},
		{"SEQNOTE_CACHE_TTL", "cache.ttl"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqnote.yaml")
	content := `
store:
  path: /tmp/annotations.duckdb
  batch_size: 50
  on_malformed: skip
cache:
  capacity: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("SEQNOTE_CACHE_TTL", "30s")
	t.Setenv("SEQNOTE_STORE_BATCH_SIZE", "75")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/tmp/annotations.duckdb" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Store.BatchSize != 75 {
		t.Errorf("env should override file: BatchSize = %d, want 75", cfg.Store.BatchSize)
	}
	if cfg.Store.OnMalformed != OnMalformedSkip {
		t.Errorf("Store.OnMalformed = %q, want skip", cfg.Store.OnMalformed)
	}
	if cfg.Cache.Capacity != 8 {
		t.Errorf("Cache.Capacity = %d, want 8", cfg.Cache.Capacity)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s", cfg.Cache.TTL)
	}
	if cfg.Store.MaxMemory != "1GB" {
		t.Errorf("defaults should survive: MaxMemory = %q", cfg.Store.MaxMemory)
	}
	if lc := cfg.Logging.LoggerConfig(); lc.Format != "console" {
		t.Errorf("LoggerConfig().Format = %q, want console", lc.Format)
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("SEQNOTE_STORE_ON_MALFORMED", "retry")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "OnMalformed") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestValidate_ArchivePath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Archive.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty archive path")
	}

	cfg.Archive.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("in-memory archive needs no path: %v", err)
	}
}
