package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func TestSetGet_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("abc")))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestGet_MissingKeyIsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte{1}))
	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestEmptyKeyRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyKey)
	require.ErrorIs(t, r.Set(ctx, "", []byte{1}), ErrEmptyKey)
	require.ErrorIs(t, r.Delete(ctx, ""), ErrEmptyKey)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, `metadata read "k"`)
	assert.ErrorContains(t, r.Set(ctx, "k", nil), `metadata write "k"`)
	assert.ErrorContains(t, r.Delete(ctx, "k"), `metadata delete "k"`)
}
