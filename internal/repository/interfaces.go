package repository

import (
	"context"
	"errors"

	"produceotron/internal/domain"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// PlanRepo persists Project Architect plans between CLI invocations.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, name string) error
}

// NotesStore is the keyed persistence store behind quick notes: a
// process-wide get/set/clear map, injectable so callers are testable
// without a real database.
type NotesStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}
