package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Initialize(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestStoreSetGetClear(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", "token-abc", "Ravi Kumar"))

	sess, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, "token-abc", sess.Token)
	assert.Equal(t, "Ravi Kumar", sess.DisplayName)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), time.Hour)
	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSetReplacesExisting(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", "old-token", "Old Name"))
	require.NoError(t, store.Set(ctx, "sess-1", "new-token", "New Name"))

	sess, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "new-token", sess.Token)
	assert.Equal(t, "New Name", sess.DisplayName)
}

func TestStoreTTLExpiry(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), -time.Second)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", "token-abc", "Ravi Kumar"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound, "expired session reads as not found")
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), time.Hour)
	assert.NoError(t, store.Clear(context.Background(), "never-existed"))
}

func TestStoreCreate(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t), time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "token-abc", "Ravi Kumar")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "token-abc", sess.Token)

	again, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, again.ID)
}

func TestCleanupExpired(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	expired := NewSQLiteStore(db, -time.Second)
	require.NoError(t, expired.Set(ctx, "old", "t1", ""))

	live := NewSQLiteStore(db, time.Hour)
	require.NoError(t, live.Set(ctx, "fresh", "t2", ""))

	require.NoError(t, live.CleanupExpired(ctx))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count))
	assert.Equal(t, 1, count)
}
