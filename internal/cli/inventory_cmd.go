package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/export"
	"produceotron/internal/inventory"
)

func newInventoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Scan folders and export their contents as a document",
	}

	cmd.AddCommand(
		newInventoryScanCmd(app),
		newInventoryExportCmd(app),
		newInventoryOrganizeCmd(app),
	)

	return cmd
}

func inventoryFlags(fs *pflag.FlagSet, opts *inventory.Options) {
	fs.BoolVar(&opts.FullNames, "full-names", false, "Keep file names verbatim, no prefix stripping")
	fs.BoolVar(&opts.KeepUnderscores, "keep-underscores", false, "Leave underscores in place")
}

func newInventoryScanCmd(app *App) *cobra.Command {
	var opts inventory.Options

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Print a nested outline of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := inventory.Scan(args[0], opts)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(formatter.Dim("Nothing found under " + args[0]))
				return nil
			}
			fmt.Print(inventory.RenderOutline(items))
			return nil
		},
	}

	inventoryFlags(cmd.Flags(), &opts)
	return cmd
}

func newInventoryExportCmd(app *App) *cobra.Command {
	var opts inventory.Options
	var out string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Export the directory outline as a .docx document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := inventory.Scan(args[0], opts)
			if err != nil {
				return err
			}
			if out == "" {
				out = export.InventoryDocFileName
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %q: %w", out, err)
			}
			defer f.Close()
			if err := export.WriteInventoryDoc(f, items, time.Now()); err != nil {
				return err
			}
			fmt.Printf("Exported %d entries to %s\n", len(items), out)
			return nil
		},
	}

	inventoryFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: "+export.InventoryDocFileName+")")
	return cmd
}

func newInventoryOrganizeCmd(app *App) *cobra.Command {
	var opts inventory.Options

	cmd := &cobra.Command{
		Use:   "organize <dir>",
		Short: "Ask the drafting engine to reorganize a directory listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Drafts == nil {
				return fmt.Errorf("drafting is disabled; set PRODUCEOTRON_LLM_ENABLED=1 to turn it on")
			}
			items, err := inventory.Scan(args[0], opts)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("nothing to organize under %q", args[0])
			}
			result, err := app.Drafts.Organize(context.Background(), inventory.RenderOutline(items))
			if err != nil {
				return err
			}
			if result.Fallback {
				fmt.Println(formatter.StyleRed.Render(result.Text))
				return nil
			}
			fmt.Println(result.Text)
			return nil
		},
	}

	inventoryFlags(cmd.Flags(), &opts)
	return cmd
}
