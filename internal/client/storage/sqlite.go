// Package storage persists the session token between client runs.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/goaltracker/internal/client/migrations"
	"github.com/dmitrijs2005/goaltracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goaltracker/internal/common"
	"github.com/dmitrijs2005/goaltracker/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite database at dsn and applies the
// embedded migrations. ":memory:" gives an ephemeral session.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	dsn, err := filex.EnsureParentDir(dsn)
	if err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// a single connection keeps ":memory:" databases consistent
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// SQLiteTokenStore keeps the session token under a single metadata key.
type SQLiteTokenStore struct {
	repo metadata.Repository
}

func NewSQLiteTokenStore(repo metadata.Repository) *SQLiteTokenStore {
	return &SQLiteTokenStore{repo: repo}
}

func (s *SQLiteTokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetToken stores token; an empty token clears the store.
func (s *SQLiteTokenStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.ClearToken(ctx)
	}
	return s.repo.Set(ctx, common.TokenMetadataKey, []byte(token))
}

func (s *SQLiteTokenStore) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenMetadataKey)
}
