package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceotron/internal/repository"
	"produceotron/internal/testutil"
)

func newNotes(t *testing.T) NotesService {
	t.Helper()
	return NewNotesService(repository.NewSQLiteNotesStore(testutil.NewTestDB(t)))
}

func TestNotesService_StartsEmpty(t *testing.T) {
	svc := newNotes(t)
	text, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestNotesService_SaveAndLoad(t *testing.T) {
	svc := newNotes(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "remember the milk"))
	text, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", text)
}

func TestNotesService_AppendSeparatesFromExisting(t *testing.T) {
	svc := newNotes(t)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, "first"))
	require.NoError(t, svc.Append(ctx, "second"))

	text, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first\n\n--- AI DRAFT ---\nsecond", text)
}

func TestNotesService_Clear(t *testing.T) {
	svc := newNotes(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "text"))
	require.NoError(t, svc.Clear(ctx))

	text, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
