// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

/*
Package store keeps annotation records in an embedded DuckDB database.

Two record kinds are supported, each in its own table:

  - GFFRecord, one row per GFF3 feature line (table gff)
  - GenBankRecord, one row per GenBank feature with a locus tag (table genbank)

A Store is opened for one kind and owns its connection. Records are loaded in
a single transaction and queried back either as rows (Query) or grouped into
FeatureRecord descriptors (FindRecords) that can be attached to any
annotation.Annotatable container.

All coordinates are 0-based and half-open.

# Usage

	st, err := store.OpenGFF(ctx, cfg)
	if err != nil {
	    return err
	}
	defer st.Close()

	if _, err := st.Load(ctx, source.GFF(r)); err != nil {
	    return err
	}

	records, err := st.FindRecords(ctx, store.Query{BioType: "CDS"})
	for _, rec := range records {
	    if _, err := rec.AddTo(seq); err != nil {
	        return err
	    }
	}

# Queries

A query must name a bio type or an identifier; ErrInvalidQuery otherwise.
Start and End filter on start_pos >= Start and end_pos < End. Rows come back
in insertion order.
*/
package store
