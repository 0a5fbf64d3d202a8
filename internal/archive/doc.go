// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package archive persists serialized features in BadgerDB.

Each feature is stored as an annotation.Document under a random UUID,
together with the name of the sequence it was taken from. Features can be
listed per sequence and restored onto any container of matching length.

Key layout:

	feature:<uuid>           JSON-encoded Entry
	seq:<name>\x00<uuid>    empty marker used by List

Archives opened with config.ArchiveConfig.InMemory keep nothing on disk.
*/
package archive
