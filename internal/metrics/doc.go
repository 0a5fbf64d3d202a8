// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package metrics registers the Prometheus instrumentation of seqnote.

Metrics are created with promauto against the default registry so that an
embedding program only needs to expose promhttp.Handler().

# Metrics

Store:
  - seqnote_store_query_duration_seconds{operation,table}
  - seqnote_store_query_errors_total{operation,table,error_type}
  - seqnote_store_rows_loaded_total{table}
  - seqnote_store_rows_skipped_total{table}

Record cache:
  - seqnote_record_cache_hits_total
  - seqnote_record_cache_misses_total

Archive:
  - seqnote_archive_operations_total{operation,result}
*/
package metrics
