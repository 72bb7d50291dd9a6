package service

import (
	"context"
	"io"
	"time"

	"produceotron/internal/domain"
	"produceotron/internal/scheduler"
)

// PlanSnapshot bundles a plan with everything derived from it. Derived
// figures are recomputed on every call, never cached across edits.
type PlanSnapshot struct {
	Plan     *domain.Plan
	Forecast scheduler.Forecast
	Tallies  map[domain.Category]int
	Totals   scheduler.Totals
	Budget   scheduler.BudgetBreakdown
}

// ArchitectService owns the Project Architect plan lifecycle. Every
// operation loads the named plan, applies one edit, and saves it back:
// the CLI equivalent of a single synchronous user action.
type ArchitectService interface {
	Create(ctx context.Context, p *domain.Plan) error
	Get(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, name string) error

	// ImportBacklog replaces the plan's backlog wholesale from an .xlsx
	// stream and reports how many rows survived normalization.
	ImportBacklog(ctx context.Context, name string, r io.Reader) (int, error)

	// ApplyForecast replaces the resource set with the forecast engine's
	// synthesized team, fully allocated across the window.
	ApplyForecast(ctx context.Context, name string) (*PlanSnapshot, error)

	AddResource(ctx context.Context, name, resourceName, role string, monthlyCost *float64) (*domain.Resource, error)
	RemoveResource(ctx context.Context, name, resourceID string) error
	SetResourceCost(ctx context.Context, name, resourceID string, monthlyCost float64) error
	SetAllocation(ctx context.Context, name, resourceID string, key domain.MonthKey, frac float64) error
	ShiftStart(ctx context.Context, name string, newStart time.Time) error
	SaveResources(ctx context.Context, name string, resources []*domain.Resource) error

	// Snapshot recomputes all derived figures for display or export.
	Snapshot(ctx context.Context, name string) (*PlanSnapshot, error)
}

// NotesService is the quick-notes scratchpad over the injected store.
type NotesService interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
	Append(ctx context.Context, text string) error
	Clear(ctx context.Context) error
}
