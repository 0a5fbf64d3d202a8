// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package archive

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/seqnote/internal/annotation"
	"github.com/tomtom215/seqnote/internal/config"
	"github.com/tomtom215/seqnote/internal/logging"
	"github.com/tomtom215/seqnote/internal/metrics"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("archive entry not found")

const (
	featureKeyPrefix = "feature:"
	seqKeyPrefix     = "seq:"
)

// Entry is one archived feature.
type Entry struct {
	ID        uuid.UUID           `json:"id"`
	SeqName   string              `json:"seq_name"`
	Document  annotation.Document `json:"document"`
	CreatedAt time.Time           `json:"created_at"`
}

// Archive stores feature documents in BadgerDB.
type Archive struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens the archive described by cfg.
func Open(cfg config.ArchiveConfig) (*Archive, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	a := &Archive{db: db, logger: logging.WithComponent("archive")}
	a.logger.Debug().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Archive opened")
	return a, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func featureKey(id uuid.UUID) []byte {
	return []byte(featureKeyPrefix + id.String())
}

func seqPrefix(seqName string) []byte {
	return []byte(seqKeyPrefix + seqName + "\x00")
}

func seqKey(seqName string, id uuid.UUID) []byte {
	return append(seqPrefix(seqName), id.String()...)
}

// Put archives f under a new ID.
func (a *Archive) Put(ctx context.Context, seqName string, f *annotation.Feature) (uuid.UUID, error) {
	return a.PutDocument(ctx, seqName, f.Document())
}

// PutDocument archives doc under a new ID.
func (a *Archive) PutDocument(ctx context.Context, seqName string, doc annotation.Document) (id uuid.UUID, err error) {
	defer func() { metrics.RecordArchiveOperation("put", err) }()

	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	entry := Entry{
		ID:        uuid.New(),
		SeqName:   seqName,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal entry: %w", err)
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(featureKey(entry.ID), data); err != nil {
			return fmt.Errorf("set entry: %w", err)
		}
		if err := txn.Set(seqKey(seqName, entry.ID), nil); err != nil {
			return fmt.Errorf("set sequence index: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	logging.Ctx(logging.ContextWithLogger(ctx, a.logger)).Debug().
		Str("id", entry.ID.String()).Str("seq", seqName).Msg("Feature archived")
	return entry.ID, nil
}

// Get returns the entry stored under id.
func (a *Archive) Get(ctx context.Context, id uuid.UUID) (entry Entry, err error) {
	defer func() { metrics.RecordArchiveOperation("get", err) }()

	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	err = a.db.View(func(txn *badger.Txn) error {
		var getErr error
		entry, getErr = getEntry(txn, id)
		return getErr
	})
	return entry, err
}

func getEntry(txn *badger.Txn, id uuid.UUID) (Entry, error) {
	var entry Entry
	item, err := txn.Get(featureKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entry, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return entry, fmt.Errorf("get entry: %w", err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	if err != nil {
		return entry, fmt.Errorf("decode entry %s: %w", id, err)
	}
	return entry, nil
}

// Restore rebuilds the feature stored under id on parent and attaches it.
func (a *Archive) Restore(ctx context.Context, id uuid.UUID, parent annotation.Annotatable) (*annotation.Feature, error) {
	entry, err := a.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := annotation.FromDocument(parent, entry.Document)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", id, err)
	}
	if err := parent.Annotations().Attach(f); err != nil {
		return nil, err
	}
	logging.Ctx(logging.ContextWithLogger(ctx, a.logger)).Debug().
		Str("id", id.String()).Str("name", f.Name()).Msg("Feature restored")
	return f, nil
}

// Delete removes the entry stored under id.
func (a *Archive) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer func() { metrics.RecordArchiveOperation("delete", err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	return a.db.Update(func(txn *badger.Txn) error {
		entry, err := getEntry(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(featureKey(id)); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		if err := txn.Delete(seqKey(entry.SeqName, id)); err != nil {
			return fmt.Errorf("delete sequence index: %w", err)
		}
		return nil
	})
}

// List returns the entries archived for seqName, or every entry when
// seqName is empty. Entries are ordered by creation time.
func (a *Archive) List(ctx context.Context, seqName string) (entries []Entry, err error) {
	defer func() { metrics.RecordArchiveOperation("list", err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		if seqName != "" {
			opts.PrefetchValues = false
		}
		it := txn.NewIterator(opts)
		defer it.Close()

		if seqName == "" {
			prefix := []byte(featureKeyPrefix)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				var entry Entry
				if err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entry)
				}); err != nil {
					return fmt.Errorf("decode entry: %w", err)
				}
				entries = append(entries, entry)
			}
			return nil
		}

		prefix := seqPrefix(seqName)
		var ids []uuid.UUID
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := uuid.ParseBytes(it.Item().Key()[len(prefix):])
			if err != nil {
				return fmt.Errorf("decode sequence index key: %w", err)
			}
			ids = append(ids, id)
		}
		for _, id := range ids {
			entry, err := getEntry(txn, id)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByCreation(entries)
	return entries, nil
}

func sortByCreation(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
