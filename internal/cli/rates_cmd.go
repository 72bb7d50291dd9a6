package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/domain"
)

func newRatesCmd(app *App) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show live exchange rates for the supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidCurrency(base) {
				return fmt.Errorf("unknown currency %q", base)
			}
			if err := app.Rates.Refresh(context.Background(), base); err != nil {
				return fmt.Errorf("fetching rates for %s: %w", base, err)
			}

			headers := []string{"CURRENCY", "", fmt.Sprintf("PER 1 %s", base)}
			var rows [][]string
			for _, c := range domain.Currencies {
				if c.Code == base {
					continue
				}
				rate, ok := app.Rates.Rate(base, c.Code)
				cell := formatter.Dim("--")
				if ok {
					cell = fmt.Sprintf("%.4f", rate)
				}
				rows = append(rows, []string{c.Code, formatter.Dim(c.Name), cell})
			}
			fmt.Print(formatter.RenderTable(headers, rows, formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight))
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "EUR", "Base currency code")
	return cmd
}
