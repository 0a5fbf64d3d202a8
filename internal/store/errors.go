// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package store

import (
	"errors"
	"io"

	"github.com/tomtom215/seqnote/internal/logging"
)

var (
	// ErrInvalidQuery is returned when a query names neither a bio type nor an identifier.
	ErrInvalidQuery = errors.New("query requires a bio type or an identifier")

	// ErrMalformedRecord is returned when a record fails validation under the abort policy.
	ErrMalformedRecord = errors.New("malformed record")
)

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource in error paths where Close errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() //nolint:errcheck
	}
}
