package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"produceotron/internal/domain"
	"produceotron/internal/scheduler"
)

const reportSheet = "Project Plan"

// Fixed column layout: resource name, role, monthly rate, then one column per
// window month, then the per-resource total.
const firstMonthCol = 4

// ReportInput is the snapshot a report serializes. All figures come in
// precomputed; the exporter does no arithmetic of its own beyond layout.
type ReportInput struct {
	Plan     *domain.Plan
	Forecast scheduler.Forecast
	Totals   scheduler.Totals
	Budget   scheduler.BudgetBreakdown
	Now      time.Time
}

// ReportFileName returns the export filename with its generation timestamp.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("Project_Architect_Plan_%s.xlsx", now.Format("20060102T150405"))
}

// BuildReport serializes the plan into an .xlsx workbook: a decorative
// milestone strip, a month header row, one row per resource with its
// allocation fraction per month and a trailing total, then a summary block.
func BuildReport(in ReportInput) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("naming report sheet: %w", err)
	}

	window := in.Plan.Window()

	if err := writeMilestoneStrip(f, window); err != nil {
		return nil, err
	}
	if err := writeHeader(f, window); err != nil {
		return nil, err
	}

	row := 3
	for _, r := range in.Plan.Resources {
		if err := writeResourceRow(f, row, r, window, in.Totals.ResourceTotals[r.ID]); err != nil {
			return nil, err
		}
		row++
	}

	if err := writeSummary(f, row+1, in); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf, nil
}

// writeMilestoneStrip paints the static phase annotation above the month
// headers. It is purely visual grouping and is never read back.
func writeMilestoneStrip(f *excelize.File, window []domain.MonthKey) error {
	col := firstMonthCol
	for _, m := range domain.DefaultMilestones {
		if col > firstMonthCol+len(window)-1 {
			break
		}
		end := col + m.Months - 1
		if last := firstMonthCol + len(window) - 1; end > last {
			end = last
		}
		startCell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		endCell, err := excelize.CoordinatesToCellName(end, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, startCell, m.Name); err != nil {
			return err
		}
		if err := f.MergeCell(reportSheet, startCell, endCell); err != nil {
			return err
		}
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#" + m.Color}, Pattern: 1},
			Font: &excelize.Font{Bold: true},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(reportSheet, startCell, endCell, style); err != nil {
			return err
		}
		col = end + 1
	}
	return nil
}

func writeHeader(f *excelize.File, window []domain.MonthKey) error {
	headers := []any{"RESOURCE", "ROLE", "RATE/MO"}
	for _, key := range window {
		headers = append(headers, string(key))
	}
	headers = append(headers, "TOTAL")
	return writeRow(f, 2, headers)
}

func writeResourceRow(f *excelize.File, row int, r *domain.Resource, window []domain.MonthKey, total float64) error {
	cells := []any{r.Name, r.Role, r.MonthlyCost}
	for _, key := range window {
		cells = append(cells, r.Allocation(key))
	}
	cells = append(cells, total)
	return writeRow(f, row, cells)
}

func writeSummary(f *excelize.File, row int, in ReportInput) error {
	lines := [][2]any{
		{"Generated", in.Now.Format("2006-01-02 15:04:05")},
		{"Total Backlog Tasks", len(in.Plan.Backlog)},
		{"Total Effort (Months)", in.Forecast.TotalEffortMonths},
		{"Inefficiency Buffer", fmt.Sprintf("%.0f%%", float64(in.Plan.Inefficiency))},
		{"Target Duration (Months)", in.Forecast.DurationMonths},
		{"Estimated Headcount", in.Forecast.Headcount},
		{"Allocated Effort (Months)", in.Totals.AllocatedEffortMonths},
		{"Base Cost", in.Budget.BaseCost},
		{"Profit Margin", fmt.Sprintf("%.0f%%", float64(in.Plan.Margin))},
		{"Contingency", fmt.Sprintf("%.0f%%", float64(in.Plan.Contingency))},
		{"Grand Total Budget", in.Budget.GrandTotal},
	}
	for i, line := range lines {
		if err := writeRow(f, row+i, []any{line[0], line[1]}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, row int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
