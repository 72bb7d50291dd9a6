package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"produceotron/internal/cli/formatter"
)

func newDraftCmd(app *App) *cobra.Command {
	var tone string
	var toNotes bool

	cmd := &cobra.Command{
		Use:   "draft <instruction>...",
		Short: "Draft a memo or email through the local drafting engine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Drafts == nil {
				return fmt.Errorf("drafting is disabled; set PRODUCEOTRON_LLM_ENABLED=1 to turn it on")
			}
			ctx := context.Background()
			result, err := app.Drafts.Draft(ctx, strings.Join(args, " "), tone)
			if err != nil {
				return err
			}
			if result.Fallback {
				fmt.Println(formatter.StyleRed.Render(result.Text))
				return nil
			}
			fmt.Println(result.Text)
			if toNotes {
				if err := app.Notes.Append(ctx, result.Text); err != nil {
					return err
				}
				fmt.Println(formatter.Dim("(saved to notes)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "professional", "Tone: professional, casual, urgent, persuasive, apologetic")
	cmd.Flags().BoolVar(&toNotes, "to-notes", false, "Append the draft to the scratchpad")
	return cmd
}
