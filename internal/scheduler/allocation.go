package scheduler

import "produceotron/internal/domain"

// Totals are the on-demand sums the allocation model derives. They are never
// cached; callers recompute on every edit.
type Totals struct {
	// AllocatedEffortMonths is the sum of allocation fractions over the
	// active window, in months.
	AllocatedEffortMonths float64
	// BaseCost is Σ monthlyCost × allocation over the active window.
	BaseCost float64
	// ResourceTotals maps resource ID to that resource's window allocation sum.
	ResourceTotals map[string]float64
}

// ComputeTotals sums allocations and cost over exactly the window keys.
// Stray allocation keys from a prior window are excluded, not purged.
func ComputeTotals(resources []*domain.Resource, window []domain.MonthKey) Totals {
	t := Totals{ResourceTotals: make(map[string]float64, len(resources))}
	for _, r := range resources {
		var sum float64
		for _, key := range window {
			sum += r.Allocation(key)
		}
		t.ResourceTotals[r.ID] = sum
		t.AllocatedEffortMonths += sum
		t.BaseCost += r.MonthlyCost * sum
	}
	return t
}
