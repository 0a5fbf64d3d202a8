// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

// Package cache provides a generic, thread-safe LRU cache with TTL.
//
// The annotation store keeps grouped FindRecords results here, keyed by a
// canonical rendering of the query. The whole cache is cleared whenever new
// records are loaded, so entries never outlive the data they were built from.
//
//	c := cache.NewLRU[[]store.FeatureRecord](256, 5*time.Minute)
//	c.Add(key, records)
//	if recs, ok := c.Get(key); ok { ... }
package cache
