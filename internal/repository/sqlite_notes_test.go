package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceotron/internal/testutil"
)

func TestSQLiteNotesStore_MissingKeyReadsEmpty(t *testing.T) {
	store := NewSQLiteNotesStore(testutil.NewTestDB(t))

	value, err := store.Get(context.Background(), "notes")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSQLiteNotesStore_SetOverwrites(t *testing.T) {
	store := NewSQLiteNotesStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "notes", "first"))
	require.NoError(t, store.Set(ctx, "notes", "second"))

	value, err := store.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestSQLiteNotesStore_KeysAreIndependent(t *testing.T) {
	store := NewSQLiteNotesStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "alpha"))
	require.NoError(t, store.Set(ctx, "b", "beta"))

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "alpha", a)
	assert.Equal(t, "beta", b)
}

func TestSQLiteNotesStore_Clear(t *testing.T) {
	store := NewSQLiteNotesStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "notes", "text"))
	require.NoError(t, store.Clear(ctx, "notes"))

	value, err := store.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	// Clearing an absent key is a no-op, not an error.
	assert.NoError(t, store.Clear(ctx, "notes"))
}
