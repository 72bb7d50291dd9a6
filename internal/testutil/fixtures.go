package testutil

import (
	"time"

	"github.com/google/uuid"

	"produceotron/internal/domain"
)

// PlanOption mutates a fixture plan before it is returned.
type PlanOption func(*domain.Plan)

func WithName(name string) PlanOption {
	return func(p *domain.Plan) { p.Name = name }
}

func WithDates(start, deadline time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = start
		p.Deadline = deadline
	}
}

func WithUnit(unit domain.EffortUnit) PlanOption {
	return func(p *domain.Plan) { p.Unit = unit }
}

func WithInefficiency(pct domain.Percent) PlanOption {
	return func(p *domain.Plan) { p.Inefficiency = pct }
}

func WithBudgetKnobs(margin, contingency domain.Percent) PlanOption {
	return func(p *domain.Plan) {
		p.Margin = margin
		p.Contingency = contingency
	}
}

func WithBacklog(items ...domain.BacklogItem) PlanOption {
	return func(p *domain.Plan) { p.Backlog = items }
}

func WithResources(resources ...*domain.Resource) PlanOption {
	return func(p *domain.Plan) { p.Resources = resources }
}

// NewPlan returns a six-month plan with sane defaults for tests.
func NewPlan(opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		ID:                 uuid.NewString(),
		Name:               "Test Plan",
		StartDate:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Deadline:           time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Unit:               domain.UnitDays,
		DefaultMonthlyCost: 8000,
		PrimaryCurrency:    "EUR",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewResource returns a resource with a single full month allocated.
func NewResource(name, role string, cost float64, key domain.MonthKey) *domain.Resource {
	r := domain.NewResource(name, role, cost)
	if key != "" {
		r.Allocations[key] = 1.0
	}
	return r
}

// Items builds a backlog from alternating task/effort pairs.
func Items(pairs ...any) []domain.BacklogItem {
	items := make([]domain.BacklogItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, domain.BacklogItem{
			Task:   pairs[i].(string),
			Effort: toFloat(pairs[i+1]),
		})
	}
	return items
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
