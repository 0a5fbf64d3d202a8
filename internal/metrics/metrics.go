// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seqnote_store_query_duration_seconds",
			Help:    "Duration of annotation store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seqnote_store_query_errors_total",
			Help: "Total number of failed annotation store operations",
		},
		[]string{"operation", "table", "error_type"},
	)

	StoreRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seqnote_store_rows_loaded_total",
			Help: "Total number of annotation records written",
		},
		[]string{"table"},
	)

	StoreRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seqnote_store_rows_skipped_total",
			Help: "Total number of malformed annotation records skipped during load",
		},
		[]string{"table"},
	)

	RecordCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seqnote_record_cache_hits_total",
			Help: "Total number of grouped record lookups served from cache",
		},
	)

	RecordCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seqnote_record_cache_misses_total",
			Help: "Total number of grouped record lookups that reached the store",
		},
	)

	RecordCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seqnote_record_cache_entries",
			Help: "Current number of grouped record results held in cache",
		},
		[]string{"table"},
	)

	ArchiveOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seqnote_archive_operations_total",
			Help: "Total number of feature archive operations",
		},
		[]string{"operation", "result"},
	)
)

// RecordStoreQuery records the duration and outcome of a store operation.
func RecordStoreQuery(operation, table string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		StoreQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordLoad records the rows written and skipped by one load.
func RecordLoad(table string, loaded, skipped int) {
	StoreRowsLoaded.WithLabelValues(table).Add(float64(loaded))
	if skipped > 0 {
		StoreRowsSkipped.WithLabelValues(table).Add(float64(skipped))
	}
}

// RecordCacheLookup counts a record cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecordCacheHits.Inc()
	} else {
		RecordCacheMisses.Inc()
	}
}

// RecordCacheSize sets the number of cached record results for table.
func RecordCacheSize(table string, size int) {
	RecordCacheEntries.WithLabelValues(table).Set(float64(size))
}

// RecordArchiveOperation counts an archive operation by result.
func RecordArchiveOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	ArchiveOperations.WithLabelValues(operation, result).Inc()
}
