// Package store is the typed key-value layer over a records.Repository.
//
// Values are stored as JSON text. Reads never fail: a storage fault or a
// value that does not decode is logged and reported as "absent". Writes
// return an error wrapping common.ErrStorageUnavailable so that an enclosing
// Atomically block can roll back.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/dbx"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/repositories/records"
)

type Store struct {
	repo    records.Repository
	db      *sql.DB
	factory records.Factory
	logger  logging.Logger
}

// New returns a store over a database. Atomically runs in a transaction.
func New(db *sql.DB, factory records.Factory, logger logging.Logger) *Store {
	return &Store{repo: factory(db), db: db, factory: factory, logger: logger}
}

// NewWithRepository returns a store over repo with no transaction support;
// Atomically runs its function directly. Used for the in-memory mode.
func NewWithRepository(repo records.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Get decodes the value under key into dst and reports whether it did.
func (s *Store) Get(ctx context.Context, key string, dst any) bool {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "storage read failed", "key", key, "err", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn(ctx, "stored value is malformed", "key", key, "err", err)
		return false
	}
	return true
}

// GetRaw returns the stored text under key, or ("", false).
func (s *Store) GetRaw(ctx context.Context, key string) (string, bool) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "storage read failed", "key", key, "err", err)
		return "", false
	}
	if raw == nil {
		return "", false
	}
	return string(raw), true
}

// Has reports whether key holds any value.
func (s *Store) Has(ctx context.Context, key string) bool {
	_, ok := s.GetRaw(ctx, key)
	return ok
}

func (s *Store) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.SetRaw(ctx, key, string(raw))
}

// SetRaw stores value as is, without JSON encoding.
func (s *Store) SetRaw(ctx context.Context, key string, value string) error {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		s.logger.Warn(ctx, "storage write failed", "key", key, "err", err)
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "storage delete failed", "key", key, "err", err)
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Keys lists stored keys with the given prefix. Faults yield an empty list.
func (s *Store) Keys(ctx context.Context, prefix string) []string {
	keys, err := s.repo.Keys(ctx, prefix)
	if err != nil {
		s.logger.Warn(ctx, "storage list failed", "prefix", prefix, "err", err)
		return nil
	}
	return keys
}

// Atomically runs fn against a store whose reads and writes all go through
// one transaction. Returning an error from fn rolls every write back.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &Store{repo: s.factory(tx), logger: s.logger})
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
