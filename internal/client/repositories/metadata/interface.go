// Package metadata stores small key/value records in the local SQLite database.
package metadata

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned for operations on the empty key.
var ErrEmptyKey = errors.New("metadata key is empty")

// Repository is a key/value store. Get on a missing key returns (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
