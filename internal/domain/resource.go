package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Resource is one team member on the plan. Allocations maps MonthKey to the
// fraction of the resource's capacity assigned in that month; stray keys
// outside the active window are kept but ignored by totals.
type Resource struct {
	ID          string
	Name        string
	Role        string
	MonthlyCost float64
	// Override marks a monthly cost edited by hand, so a change to the plan's
	// default cost does not overwrite it.
	Override    bool
	Allocations map[MonthKey]float64
}

// NewResource creates a resource with a fresh ID and an empty allocation map.
func NewResource(name, role string, monthlyCost float64) *Resource {
	return &Resource{
		ID:          uuid.NewString(),
		Name:        name,
		Role:        role,
		MonthlyCost: monthlyCost,
		Allocations: make(map[MonthKey]float64),
	}
}

// SetAllocation writes the allocation fraction for one month. Only the fixed
// discrete levels are accepted.
func (r *Resource) SetAllocation(key MonthKey, frac float64) error {
	if !ValidAllocation(frac) {
		return fmt.Errorf("allocation %.2f must be one of 0, 0.25, 0.5, 0.75, 1", frac)
	}
	if r.Allocations == nil {
		r.Allocations = make(map[MonthKey]float64)
	}
	r.Allocations[key] = frac
	return nil
}

// Allocation reads the fraction for one month; missing keys read as zero.
func (r *Resource) Allocation(key MonthKey) float64 {
	return r.Allocations[key]
}

// ShiftAllocations rewrites every allocation key by delta calendar months,
// preserving each fraction under its new key.
func (r *Resource) ShiftAllocations(delta int) {
	if delta == 0 || len(r.Allocations) == 0 {
		return
	}
	shifted := make(map[MonthKey]float64, len(r.Allocations))
	for key, frac := range r.Allocations {
		shifted[key.Add(delta)] = frac
	}
	r.Allocations = shifted
}
