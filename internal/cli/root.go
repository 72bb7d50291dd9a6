package cli

import (
	"github.com/spf13/cobra"

	"produceotron/internal/intelligence"
	"produceotron/internal/rates"
	"produceotron/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Architect service.ArchitectService
	Notes     service.NotesService
	Drafts    *intelligence.DraftService
	Rates     *rates.Fetcher
}

// NewRootCmd creates the top-level "produceotron" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "produceotron",
		Short: "Retro productivity toolbox: project plans, budgets, notes, and drafts",
	}

	root.AddCommand(
		newArchitectCmd(app),
		newBudgetCmd(app),
		newInventoryCmd(app),
		newNotesCmd(app),
		newDraftCmd(app),
		newRatesCmd(app),
	)

	return root
}
