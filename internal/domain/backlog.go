package domain

import "fmt"

// BacklogItem is one imported task with its effort estimate, expressed in the
// plan's current effort unit. Items are immutable once loaded; a re-import
// replaces the whole backlog.
type BacklogItem struct {
	Task   string
	Effort float64
}

// Validate checks the importer's row-acceptance invariants.
func (b BacklogItem) Validate() error {
	if b.Task == "" {
		return fmt.Errorf("backlog item task must not be empty")
	}
	if b.Effort <= 0 {
		return fmt.Errorf("backlog item %q effort %.2f must be positive", b.Task, b.Effort)
	}
	return nil
}

// TotalEffort sums the raw effort over items, in the unit they were imported in.
func TotalEffort(items []BacklogItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Effort
	}
	return sum
}
