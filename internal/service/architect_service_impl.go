package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"produceotron/internal/domain"
	"produceotron/internal/importer"
	"produceotron/internal/repository"
	"produceotron/internal/scheduler"
)

type architectService struct {
	plans    repository.PlanRepo
	classify scheduler.Classifier
}

// NewArchitectService creates the plan service. A nil classifier uses the
// keyword heuristic; tests inject deterministic ones.
func NewArchitectService(plans repository.PlanRepo, classify scheduler.Classifier) ArchitectService {
	if classify == nil {
		classify = scheduler.KeywordClassifier
	}
	return &architectService{plans: plans, classify: classify}
}

func (s *architectService) Create(ctx context.Context, p *domain.Plan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.plans.Create(ctx, p)
}

func (s *architectService) Get(ctx context.Context, name string) (*domain.Plan, error) {
	return s.plans.GetByName(ctx, name)
}

func (s *architectService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *architectService) Delete(ctx context.Context, name string) error {
	return s.plans.Delete(ctx, name)
}

func (s *architectService) ImportBacklog(ctx context.Context, name string, r io.Reader) (int, error) {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	items, err := importer.ImportBacklog(r)
	if err != nil {
		return 0, err
	}
	// An empty import is a warning for the caller, not a change: the
	// previous backlog stays in place.
	if len(items) == 0 {
		return 0, nil
	}
	p.Backlog = items
	return len(items), s.plans.Update(ctx, p)
}

func (s *architectService) ApplyForecast(ctx context.Context, name string) (*PlanSnapshot, error) {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(p.Backlog) == 0 {
		return nil, fmt.Errorf("plan %q has no backlog; import one before forecasting", name)
	}

	fc := scheduler.ComputeForecast(p.TotalEffortRaw(), p.Unit, p.Inefficiency, p.DurationMonths())
	tallies := scheduler.Tally(p.Backlog, s.classify)
	p.Resources = scheduler.BuildTeam(fc.Headcount, tallies, p.DefaultMonthlyCost, p.Window())

	if err := s.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.snapshot(p), nil
}

func (s *architectService) AddResource(ctx context.Context, name, resourceName, role string, monthlyCost *float64) (*domain.Resource, error) {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	cost := p.DefaultMonthlyCost
	override := false
	if monthlyCost != nil {
		if *monthlyCost < 0 {
			return nil, fmt.Errorf("monthly cost %.2f must not be negative", *monthlyCost)
		}
		cost = *monthlyCost
		override = true
	}
	r := domain.NewResource(resourceName, role, cost)
	r.Override = override
	p.Resources = append(p.Resources, r)
	if err := s.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *architectService) RemoveResource(ctx context.Context, name, resourceID string) error {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if !p.RemoveResource(resourceID) {
		return fmt.Errorf("resource %q: %w", resourceID, repository.ErrNotFound)
	}
	return s.plans.Update(ctx, p)
}

func (s *architectService) SetResourceCost(ctx context.Context, name, resourceID string, monthlyCost float64) error {
	if monthlyCost < 0 {
		return fmt.Errorf("monthly cost %.2f must not be negative", monthlyCost)
	}
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return err
	}
	r := p.Resource(resourceID)
	if r == nil {
		return fmt.Errorf("resource %q: %w", resourceID, repository.ErrNotFound)
	}
	r.MonthlyCost = monthlyCost
	r.Override = true
	return s.plans.Update(ctx, p)
}

func (s *architectService) SetAllocation(ctx context.Context, name, resourceID string, key domain.MonthKey, frac float64) error {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return err
	}
	r := p.Resource(resourceID)
	if r == nil {
		return fmt.Errorf("resource %q: %w", resourceID, repository.ErrNotFound)
	}
	if err := r.SetAllocation(key, frac); err != nil {
		return err
	}
	return s.plans.Update(ctx, p)
}

func (s *architectService) ShiftStart(ctx context.Context, name string, newStart time.Time) error {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return err
	}
	p.ShiftStart(newStart)
	return s.plans.Update(ctx, p)
}

func (s *architectService) SaveResources(ctx context.Context, name string, resources []*domain.Resource) error {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return err
	}
	p.Resources = resources
	return s.plans.Update(ctx, p)
}

func (s *architectService) Snapshot(ctx context.Context, name string) (*PlanSnapshot, error) {
	p, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.snapshot(p), nil
}

func (s *architectService) snapshot(p *domain.Plan) *PlanSnapshot {
	window := p.Window()
	fc := scheduler.ComputeForecast(p.TotalEffortRaw(), p.Unit, p.Inefficiency, p.DurationMonths())
	totals := scheduler.ComputeTotals(p.Resources, window)
	return &PlanSnapshot{
		Plan:     p,
		Forecast: fc,
		Tallies:  scheduler.Tally(p.Backlog, s.classify),
		Totals:   totals,
		Budget:   scheduler.ProjectBudget(totals.BaseCost, p.Margin, p.Contingency),
	}
}
