// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

// Package logging provides the zerolog-based structured logger shared by
// every seqnote package.
//
// A single global logger is configured once (normally from
// config.LoggingConfig) and accessed through level helpers. Packages that
// want a stable component field take a child logger:
//
//	log := logging.WithComponent("store")
//	log.Info().Str("table", "gff").Int("rows", n).Msg("load complete")
//
// Context helpers attach a correlation ID so that a load and the queries
// that follow it can be tied together in the output:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Msg("query")
//
// Always terminate log chains with .Msg() or .Send().
package logging
