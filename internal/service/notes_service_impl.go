package service

import (
	"context"

	"produceotron/internal/repository"
)

// notesKey is the fixed storage key the scratchpad lives under.
const notesKey = "produceotron-notes"

// draftSeparator prefixes drafts appended to existing notes.
const draftSeparator = "\n\n--- AI DRAFT ---\n"

type notesService struct {
	store repository.NotesStore
}

// NewNotesService creates the quick-notes service over the injected store.
func NewNotesService(store repository.NotesStore) NotesService {
	return &notesService{store: store}
}

func (s *notesService) Load(ctx context.Context) (string, error) {
	return s.store.Get(ctx, notesKey)
}

func (s *notesService) Save(ctx context.Context, text string) error {
	return s.store.Set(ctx, notesKey, text)
}

// Append adds text to the end of the notes, separated from existing content
// by the draft marker.
func (s *notesService) Append(ctx context.Context, text string) error {
	existing, err := s.store.Get(ctx, notesKey)
	if err != nil {
		return err
	}
	updated := text
	if existing != "" {
		updated = existing + draftSeparator + text
	}
	return s.store.Set(ctx, notesKey, updated)
}

func (s *notesService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, notesKey)
}
