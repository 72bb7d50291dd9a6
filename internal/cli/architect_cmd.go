package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/domain"
	"produceotron/internal/export"
	"produceotron/internal/scheduler"
)

const dateLayout = "2006-01-02"

// resolveResourceID matches input against a plan's resources: exact ID,
// then ID prefix, then case-insensitive name.
func resolveResourceID(p *domain.Plan, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("resource ID is required")
	}
	for _, r := range p.Resources {
		if r.ID == input {
			return r.ID, nil
		}
	}
	var matches []string
	for _, r := range p.Resources {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("resource ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
	for _, r := range p.Resources {
		if strings.EqualFold(r.Name, input) {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("resource not found: %q", input)
}

func newArchitectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "architect",
		Short: "Plan projects: backlog, forecast, allocations, budget, export",
	}

	cmd.AddCommand(
		newArchitectNewCmd(app),
		newArchitectListCmd(app),
		newArchitectShowCmd(app),
		newArchitectImportCmd(app),
		newArchitectForecastCmd(app),
		newArchitectResourceCmd(app),
		newArchitectAllocCmd(app),
		newArchitectShiftCmd(app),
		newArchitectExportCmd(app),
		newArchitectDeleteCmd(app),
	)

	return cmd
}

func newArchitectNewCmd(app *App) *cobra.Command {
	var (
		name, start, deadline, unit   string
		primary, secondary            string
		inefficiency, margin, conting float64
		cost                          float64
		interactive                   bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new project plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || (name == "" && isInteractive()) {
				p, err := runPlanWizard()
				if err != nil {
					return err
				}
				if err := app.Architect.Create(context.Background(), p); err != nil {
					return err
				}
				fmt.Printf("Created plan %q (%d months)\n", p.Name, p.DurationMonths())
				return nil
			}

			if name == "" {
				return fmt.Errorf("plan name is required (use --name or run interactively)")
			}
			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			deadlineDate, err := time.Parse(dateLayout, deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadline, err)
			}
			effortUnit, err := domain.ParseEffortUnit(unit)
			if err != nil {
				return err
			}
			ineffPct, err := domain.NewPercent(inefficiency)
			if err != nil {
				return fmt.Errorf("inefficiency: %w", err)
			}
			marginPct, err := domain.NewPercent(margin)
			if err != nil {
				return fmt.Errorf("margin: %w", err)
			}
			contingPct, err := domain.NewPercent(conting)
			if err != nil {
				return fmt.Errorf("contingency: %w", err)
			}
			if !domain.ValidCurrency(primary) {
				return fmt.Errorf("unknown currency %q", primary)
			}
			if secondary != "" && !domain.ValidCurrency(secondary) {
				return fmt.Errorf("unknown currency %q", secondary)
			}

			p := &domain.Plan{
				Name:               name,
				StartDate:          startDate,
				Deadline:           deadlineDate,
				Unit:               effortUnit,
				Inefficiency:       ineffPct,
				DefaultMonthlyCost: cost,
				Margin:             marginPct,
				Contingency:        contingPct,
				PrimaryCurrency:    primary,
				SecondaryCurrency:  secondary,
			}
			if err := app.Architect.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created plan %q (%d months)\n", p.Name, p.DurationMonths())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&unit, "unit", "days", "Backlog effort unit: months, days, or hours")
	cmd.Flags().Float64Var(&inefficiency, "inefficiency", 0, "Inefficiency buffer percent (0-100)")
	cmd.Flags().Float64Var(&cost, "cost", 8000, "Default monthly cost per resource")
	cmd.Flags().Float64Var(&margin, "margin", 0, "Profit margin percent (0-100)")
	cmd.Flags().Float64Var(&conting, "contingency", 0, "Contingency percent (0-100)")
	cmd.Flags().StringVar(&primary, "currency", "EUR", "Primary currency code")
	cmd.Flags().StringVar(&secondary, "secondary", "", "Secondary currency code for budget display")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Create through the guided wizard")

	return cmd
}

func newArchitectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List project plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Architect.List(context.Background())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}
			fmt.Print(formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newArchitectShowCmd(app *App) *cobra.Command {
	var backlog bool

	cmd := &cobra.Command{
		Use:   "show <plan>",
		Short: "Show a plan with its forecast, allocations, and budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Architect.Snapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSnapshot(snap))
			if backlog {
				if len(snap.Plan.Backlog) == 0 {
					fmt.Println(formatter.Dim("Backlog is empty."))
					return nil
				}
				fmt.Println()
				fmt.Print(formatter.FormatBacklog(snap.Plan.Backlog, snap.Plan.Unit, scheduler.KeywordClassifier))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&backlog, "backlog", false, "Also print the backlog items")
	return cmd
}

func newArchitectImportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import <plan>",
		Short: "Import a backlog from an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %q: %w", file, err)
			}
			defer f.Close()

			n, err := app.Architect.ImportBacklog(context.Background(), args[0], f)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println("No importable rows found. Existing backlog left untouched.")
				return nil
			}
			fmt.Printf("Imported %d backlog items into %q.\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the .xlsx backlog")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newArchitectForecastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <plan>",
		Short: "Synthesize a fully allocated team from the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Architect.ApplyForecast(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Forecast: %d %s over %d months.\n\n",
				snap.Forecast.Headcount,
				pluralize(snap.Forecast.Headcount, "resource", "resources"),
				snap.Forecast.DurationMonths)
			fmt.Print(formatter.FormatTallies(snap.Tallies))
			fmt.Println()
			fmt.Println(formatter.FormatSnapshot(snap))
			return nil
		},
	}
}

func newArchitectResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage a plan's resources",
	}
	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceRemoveCmd(app),
		newResourceCostCmd(app),
	)
	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var resourceName, role string
	var cost float64

	cmd := &cobra.Command{
		Use:   "add <plan>",
		Short: "Add a resource to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var costPtr *float64
			if cmd.Flags().Changed("cost") {
				costPtr = &cost
			}
			r, err := app.Architect.AddResource(context.Background(), args[0], resourceName, role, costPtr)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s) as %s\n", r.Name, r.ID[:8], r.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&resourceName, "name", "", "Resource name")
	cmd.Flags().StringVar(&role, "role", "", "Role label")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Monthly cost override")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <plan> <resource>",
		Short: "Remove a resource from a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Architect.Get(ctx, args[0])
			if err != nil {
				return err
			}
			id, err := resolveResourceID(p, args[1])
			if err != nil {
				return err
			}
			if err := app.Architect.RemoveResource(ctx, args[0], id); err != nil {
				return err
			}
			fmt.Printf("Removed resource %s from %q.\n", id[:8], args[0])
			return nil
		},
	}
}

func newResourceCostCmd(app *App) *cobra.Command {
	var cost float64

	cmd := &cobra.Command{
		Use:   "cost <plan> <resource>",
		Short: "Override a resource's monthly cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Architect.Get(ctx, args[0])
			if err != nil {
				return err
			}
			id, err := resolveResourceID(p, args[1])
			if err != nil {
				return err
			}
			if err := app.Architect.SetResourceCost(ctx, args[0], id, cost); err != nil {
				return err
			}
			fmt.Printf("Set monthly cost for %s to %.2f.\n", id[:8], cost)
			return nil
		},
	}

	cmd.Flags().Float64Var(&cost, "cost", 0, "New monthly cost")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

func newArchitectAllocCmd(app *App) *cobra.Command {
	var month string
	var frac float64

	cmd := &cobra.Command{
		Use:   "alloc <plan> [resource]",
		Short: "Edit allocations, either one cell or the interactive grid",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Architect.Get(ctx, args[0])
			if err != nil {
				return err
			}

			// No cell addressed: open the grid editor when on a terminal.
			if len(args) == 1 && month == "" {
				if !isInteractive() {
					return fmt.Errorf("the grid editor needs a terminal; use --month and --frac instead")
				}
				resources, err := runAllocationGrid(p)
				if err != nil {
					return err
				}
				if resources == nil {
					fmt.Println("Allocation edit cancelled.")
					return nil
				}
				if err := app.Architect.SaveResources(ctx, args[0], resources); err != nil {
					return err
				}
				fmt.Println("Allocations saved.")
				return nil
			}

			if len(args) != 2 || month == "" {
				return fmt.Errorf("setting one cell needs a resource argument and --month")
			}
			id, err := resolveResourceID(p, args[1])
			if err != nil {
				return err
			}
			key, err := domain.ParseMonthKey(month)
			if err != nil {
				return err
			}
			if err := app.Architect.SetAllocation(ctx, args[0], id, key, frac); err != nil {
				return err
			}
			fmt.Printf("Set %s %s to %.0f%%.\n", id[:8], key, frac*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month key (YYYY-MM)")
	cmd.Flags().Float64Var(&frac, "frac", 0, "Allocation fraction: 0, 0.25, 0.5, 0.75, or 1")
	return cmd
}

func newArchitectShiftCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "shift <plan>",
		Short: "Move a plan's start date, carrying allocations along",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newStart, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			if err := app.Architect.ShiftStart(context.Background(), args[0], newStart); err != nil {
				return err
			}
			fmt.Printf("Shifted %q to start %s.\n", args[0], start)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newArchitectExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <plan>",
		Short: "Export the plan as an .xlsx report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Architect.Snapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			now := time.Now()
			buf, err := export.BuildReport(export.ReportInput{
				Plan:     snap.Plan,
				Forecast: snap.Forecast,
				Totals:   snap.Totals,
				Budget:   snap.Budget,
				Now:      now,
			})
			if err != nil {
				return err
			}
			if out == "" {
				out = export.ReportFileName(now)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %q: %w", out, err)
			}
			fmt.Printf("Exported %q to %s\n", args[0], out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: timestamped name in the working directory)")
	return cmd
}

func newArchitectDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan>",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Architect.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted plan %q.\n", args[0])
			return nil
		},
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
