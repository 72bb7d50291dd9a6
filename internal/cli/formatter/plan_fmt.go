package formatter

import (
	"fmt"
	"strings"

	"produceotron/internal/domain"
	"produceotron/internal/scheduler"
	"produceotron/internal/service"
)

const dateLayout = "2006-01-02"

// FormatPlanList renders the plan listing table.
func FormatPlanList(plans []*domain.Plan) string {
	headers := []string{"NAME", "START", "DEADLINE", "MONTHS", "BACKLOG", "TEAM"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			StyleBold.Render(p.Name),
			p.StartDate.Format(dateLayout),
			p.Deadline.Format(dateLayout),
			fmt.Sprintf("%d", p.DurationMonths()),
			fmt.Sprintf("%d", len(p.Backlog)),
			fmt.Sprintf("%d", len(p.Resources)),
		})
	}
	return RenderTable(headers, rows,
		AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight)
}

// FormatBacklog renders the imported backlog with per-item classification.
func FormatBacklog(items []domain.BacklogItem, unit domain.EffortUnit, classify scheduler.Classifier) string {
	headers := []string{"#", "TASK", "EFFORT", "CATEGORY"}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		cat := classify(item.Task)
		label := string(cat)
		if cat == domain.CategoryNone {
			label = "--"
		}
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprintf("%d", i+1)),
			item.Task,
			fmt.Sprintf("%.4g %s", item.Effort, unit),
			StylePurple.Render(label),
		})
	}
	return RenderTable(headers, rows, AlignRight, AlignLeft, AlignRight, AlignLeft)
}

// FormatSnapshot renders the full plan view: summary box, forecast figures,
// the resource grid, and the budget breakdown.
func FormatSnapshot(snap *service.PlanSnapshot) string {
	p := snap.Plan

	var summary strings.Builder
	fmt.Fprintf(&summary, "%s  %s\n",
		StyleBold.Render(p.Name),
		Dim(p.StartDate.Format(dateLayout)+" .. "+p.Deadline.Format(dateLayout)))
	fmt.Fprintf(&summary, "Duration   %s\n", EffortMonths(float64(snap.Forecast.DurationMonths)))
	fmt.Fprintf(&summary, "Effort     %s raw, %s adjusted (%.0f%% drag)\n",
		EffortMonths(snap.Forecast.TotalEffortMonths),
		EffortMonths(snap.Forecast.AdjustedEffortMonths),
		float64(p.Inefficiency))
	fmt.Fprintf(&summary, "Headcount  %d", snap.Forecast.Headcount)

	var b strings.Builder
	b.WriteString(RenderBox("Project Architect", summary.String()))
	b.WriteString("\n\n")

	if len(p.Resources) > 0 {
		b.WriteString(FormatResourceGrid(p.Resources, p.Window(), p.PrimaryCurrency))
		b.WriteString("\n")
	} else {
		b.WriteString(Dim("No resources yet. Run forecast or add them by hand.\n\n"))
	}

	b.WriteString(FormatBudget(snap.Budget, p.Margin, p.Contingency, p.PrimaryCurrency, snap.Totals.AllocatedEffortMonths))
	return b.String()
}

// FormatResourceGrid renders the allocation grid, one row per resource and
// one column per month in the window.
func FormatResourceGrid(resources []*domain.Resource, window []domain.MonthKey, currency string) string {
	headers := []string{"ID", "RESOURCE", "ROLE", "RATE/MO"}
	aligns := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight}
	for _, key := range window {
		headers = append(headers, string(key))
		aligns = append(aligns, AlignRight)
	}
	headers = append(headers, "TOTAL")
	aligns = append(aligns, AlignRight)

	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		row := []string{
			TruncID(r.ID),
			r.Name,
			RoleBadge(r.Role),
			Money(r.MonthlyCost, currency),
		}
		var total float64
		for _, key := range window {
			frac := r.Allocation(key)
			total += frac
			row = append(row, AllocationCell(frac))
		}
		row = append(row, EffortMonths(total))
		rows = append(rows, row)
	}
	return RenderTable(headers, rows, aligns...)
}

// FormatBudget renders the projection ladder from base cost to grand total.
func FormatBudget(bd scheduler.BudgetBreakdown, margin, contingency domain.Percent, currency string, allocatedMonths float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Allocated effort   %s\n", EffortMonths(allocatedMonths))
	fmt.Fprintf(&b, "Base cost          %s\n", Money(bd.BaseCost, currency))
	fmt.Fprintf(&b, "Margin %3.0f%%        %s\n", float64(margin), Money(bd.MarginAmount, currency))
	fmt.Fprintf(&b, "Subtotal           %s\n", Money(bd.Subtotal, currency))
	fmt.Fprintf(&b, "Contingency %3.0f%%   %s\n", float64(contingency), Money(bd.ContingencyAmount, currency))
	fmt.Fprintf(&b, "%s  %s", StyleBold.Render("GRAND TOTAL      "), StyleGreen.Render(Money(bd.GrandTotal, currency)))
	return b.String()
}

// FormatTallies renders the classifier's category counts.
func FormatTallies(tallies map[domain.Category]int) string {
	headers := []string{"CATEGORY", "ITEMS"}
	rows := make([][]string, 0, len(tallies))
	for _, cat := range []domain.Category{
		domain.CategoryInterface,
		domain.CategoryEngineering,
		domain.CategoryArt,
		domain.CategoryDesign,
		domain.CategoryQuality,
	} {
		if n := tallies[cat]; n > 0 {
			rows = append(rows, []string{StylePurple.Render(string(cat)), fmt.Sprintf("%d", n)})
		}
	}
	if n := tallies[domain.CategoryNone]; n > 0 {
		rows = append(rows, []string{Dim("unclassified"), fmt.Sprintf("%d", n)})
	}
	return RenderTable(headers, rows, AlignLeft, AlignRight)
}
