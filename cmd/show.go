package cmd

import (
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/adapters/render/checklist"
	"github.com/spf13/cobra"
)

func newShowCmd(app *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the active list, or the hub overview when none is active",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			opts := checklist.RenderOptions{Now: app.clock.Now(), ShowCollapsed: all}

			list := session.ActiveList()
			if list == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), checklist.RenderHub(session.Hub(), opts))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), checklist.RenderList(list, opts))
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show subtasks of collapsed checkpoints too")
	return cmd
}
