package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"produceotron/internal/cli/formatter"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Quick notes scratchpad",
	}

	cmd.AddCommand(
		newNotesShowCmd(app),
		newNotesEditCmd(app),
		newNotesAppendCmd(app),
		newNotesClearCmd(app),
		newNotesExportCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the scratchpad",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Notes.Load(context.Background())
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Println(formatter.Dim("Scratchpad is empty."))
				return nil
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newNotesEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the scratchpad in a full-screen editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return fmt.Errorf("the editor needs a terminal; use notes append instead")
			}
			ctx := context.Background()
			text, err := app.Notes.Load(ctx)
			if err != nil {
				return err
			}
			edited, saved, err := runNotesEditor(text)
			if err != nil {
				return err
			}
			if !saved {
				fmt.Println("Edit cancelled.")
				return nil
			}
			if err := app.Notes.Save(ctx, edited); err != nil {
				return err
			}
			fmt.Println("Notes saved.")
			return nil
		},
	}
}

func newNotesAppendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "append <text>...",
		Short: "Append text to the scratchpad",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Append(context.Background(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Appended.")
			return nil
		},
	}
}

func newNotesClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase the scratchpad",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && isInteractive() {
				confirmed := false
				if err := wizardConfirm("Erase all notes?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Kept the notes.")
					return nil
				}
			}
			if err := app.Notes.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("Scratchpad cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func newNotesExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the scratchpad to a text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Notes.Load(context.Background())
			if err != nil {
				return err
			}
			if text == "" {
				return fmt.Errorf("scratchpad is empty, nothing to export")
			}
			if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %q: %w", out, err)
			}
			fmt.Printf("Exported notes to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "quick-notes.txt", "Output path")
	return cmd
}
