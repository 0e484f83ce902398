package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goaltracker/internal/dbx"
)

const (
	selectValueSQL = `SELECT value FROM metadata WHERE key = ?`
	upsertValueSQL = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteValueSQL = `DELETE FROM metadata WHERE key = ?`
)

// SQLiteRepository implements Repository over the metadata table created by
// the storage migrations.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	switch err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, wrap("read", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value stored under key. A nil value is stored
// as an empty blob since the column is NOT NULL.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, upsertValueSQL, key, value); err != nil {
		return wrap("write", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := r.db.ExecContext(ctx, deleteValueSQL, key); err != nil {
		return wrap("delete", key, err)
	}
	return nil
}

func wrap(op, key string, err error) error {
	return fmt.Errorf("metadata %s %q: %w", op, key, err)
}
