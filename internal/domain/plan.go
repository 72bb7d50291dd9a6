package domain

import (
	"fmt"
	"time"
)

// Plan is the Project Architect aggregate: the parameters, backlog, and
// resource set one interactive session works on. Everything derived from it
// (window, totals, budget) is recomputed from scratch on each read.
type Plan struct {
	ID                 string
	Name               string
	StartDate          time.Time
	Deadline           time.Time
	Unit               EffortUnit
	Inefficiency       Percent
	DefaultMonthlyCost float64
	Margin             Percent
	Contingency        Percent
	PrimaryCurrency    string
	// SecondaryCurrency empty disables the dual-currency display.
	SecondaryCurrency string
	Backlog           []BacklogItem
	Resources         []*Resource
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the invariants a plan must hold before persisting.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("plan start date is required")
	}
	if p.Deadline.IsZero() {
		return fmt.Errorf("plan deadline is required")
	}
	if !ValidEffortUnits[string(p.Unit)] {
		return fmt.Errorf("plan effort unit %q is invalid", p.Unit)
	}
	if p.DefaultMonthlyCost < 0 {
		return fmt.Errorf("default monthly cost %.2f must not be negative", p.DefaultMonthlyCost)
	}
	if !ValidCurrency(p.PrimaryCurrency) {
		return fmt.Errorf("primary currency %q is not supported", p.PrimaryCurrency)
	}
	if p.SecondaryCurrency != "" && !ValidCurrency(p.SecondaryCurrency) {
		return fmt.Errorf("secondary currency %q is not supported", p.SecondaryCurrency)
	}
	return nil
}

// DurationMonths returns ceil((deadline - start) / 1 month), floored at 1.
func (p *Plan) DurationMonths() int {
	months := MonthsBetween(p.StartDate, p.Deadline)
	if p.Deadline.Day() > p.StartDate.Day() {
		months++
	}
	if months < 1 {
		return 1
	}
	return months
}

// Window returns the active MonthKey sequence, one key per project month
// starting with the month containing StartDate.
func (p *Plan) Window() []MonthKey {
	return MonthWindow(p.StartDate, p.DurationMonths())
}

// TotalEffortRaw sums backlog effort in the plan's selected unit.
func (p *Plan) TotalEffortRaw() float64 {
	return TotalEffort(p.Backlog)
}

// TotalEffortMonths converts the raw backlog effort into months.
func (p *Plan) TotalEffortMonths() float64 {
	return p.TotalEffortRaw() * p.Unit.RatioToMonth()
}

// Resource finds a resource by ID, or nil.
func (p *Plan) Resource(id string) *Resource {
	for _, r := range p.Resources {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RemoveResource deletes a resource by ID and reports whether it existed.
func (p *Plan) RemoveResource(id string) bool {
	for i, r := range p.Resources {
		if r.ID == id {
			p.Resources = append(p.Resources[:i], p.Resources[i+1:]...)
			return true
		}
	}
	return false
}

// ShiftStart moves the project start to newStart and rewrites every
// resource's allocation map by the same calendar-month delta. The deadline is
// untouched; allocations pushed past it become dead data excluded from totals
// but are not purged.
func (p *Plan) ShiftStart(newStart time.Time) {
	delta := MonthsBetween(p.StartDate, newStart)
	p.StartDate = newStart
	if delta == 0 {
		return
	}
	for _, r := range p.Resources {
		r.ShiftAllocations(delta)
	}
}
