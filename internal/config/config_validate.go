// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package config

import (
	"errors"
	"fmt"

	"github.com/tomtom215/seqnote/internal/validation"
)

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}
	return c.validateArchive()
}

func (c *Config) validateArchive() error {
	if !c.Archive.InMemory && c.Archive.Path == "" {
		return errors.New("archive.path is required unless archive.in_memory is set")
	}
	return nil
}
