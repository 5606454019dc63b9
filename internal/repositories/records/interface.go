// Package records persists opaque string values under string keys in the
// "records" table. It is the storage floor under internal/store; callers above
// it deal in typed values, never in rows.
package records

import (
	"context"

	"github.com/dmitrijs2005/eventdesk/internal/dbx"
)

type Repository interface {
	// Get returns the value under key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Clear(ctx context.Context) error
}

// Factory binds a Repository to a connection or transaction.
type Factory func(db dbx.DBTX) Repository
