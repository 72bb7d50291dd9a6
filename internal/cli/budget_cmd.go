package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/domain"
	"produceotron/internal/scheduler"
)

func newBudgetCmd(app *App) *cobra.Command {
	var (
		base, margin, conting float64
		primary, secondary    string
	)

	cmd := &cobra.Command{
		Use:   "budget [plan]",
		Short: "Project a budget, from a saved plan or from raw figures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				snap, err := app.Architect.Snapshot(ctx, args[0])
				if err != nil {
					return err
				}
				p := snap.Plan
				fmt.Println(formatter.FormatBudget(snap.Budget, p.Margin, p.Contingency, p.PrimaryCurrency, snap.Totals.AllocatedEffortMonths))
				printSecondary(ctx, app, snap.Budget, p.PrimaryCurrency, p.SecondaryCurrency)
				return nil
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

			bd := scheduler.ProjectBudget(base, marginPct, contingPct)
			fmt.Println(formatter.FormatBudget(bd, marginPct, contingPct, primary, 0))
			printSecondary(ctx, app, bd, primary, secondary)
			return nil
		},
	}

	cmd.Flags().Float64Var(&base, "base", 0, "Base cost to project from")
	cmd.Flags().Float64Var(&margin, "margin", 0, "Profit margin percent (0-100)")
	cmd.Flags().Float64Var(&conting, "contingency", 0, "Contingency percent (0-100)")
	cmd.Flags().StringVar(&primary, "currency", "EUR", "Primary currency code")
	cmd.Flags().StringVar(&secondary, "secondary", "", "Secondary currency for converted totals")

	return cmd
}

// printSecondary adds a converted grand-total line when a secondary currency
// is configured and a live rate is available. Lookup failure degrades to
// primary-only output; the projection above is already printed and correct.
func printSecondary(ctx context.Context, app *App, bd scheduler.BudgetBreakdown, primary, secondary string) {
	if secondary == "" || secondary == primary {
		return
	}
	if err := app.Rates.Refresh(ctx, primary); err != nil {
		fmt.Println(formatter.Dim(fmt.Sprintf("(%s conversion unavailable: %v)", secondary, err)))
		return
	}
	rate, ok := app.Rates.Rate(primary, secondary)
	if !ok {
		fmt.Println(formatter.Dim(fmt.Sprintf("(no %s rate in the current table)", secondary)))
		return
	}
	fmt.Printf("%s  %s %s\n",
		formatter.Dim("≈ in "+secondary),
		formatter.StyleGreen.Render(formatter.Money(bd.GrandTotal*rate, secondary)),
		formatter.Dim(fmt.Sprintf("@ %.4f", rate)))
}
