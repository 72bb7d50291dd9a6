package scheduler

import "produceotron/internal/domain"

// BudgetBreakdown is the margin/contingency projection over a base cost.
// All figures are in the plan's primary currency; secondary-currency display
// is a presentation concern layered on top by the caller.
type BudgetBreakdown struct {
	BaseCost          float64
	MarginAmount      float64
	Subtotal          float64
	ContingencyAmount float64
	GrandTotal        float64
}

// ProjectBudget applies margin then contingency:
// subtotal = base × (1 + margin/100); grand = subtotal × (1 + contingency/100).
func ProjectBudget(baseCost float64, margin, contingency domain.Percent) BudgetBreakdown {
	subtotal := baseCost * margin.Multiplier()
	grand := subtotal * contingency.Multiplier()
	return BudgetBreakdown{
		BaseCost:          baseCost,
		MarginAmount:      subtotal - baseCost,
		Subtotal:          subtotal,
		ContingencyAmount: grand - subtotal,
		GrandTotal:        grand,
	}
}
