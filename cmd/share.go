package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShareCmd(app *app) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a share link for the active list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			link, err := session.ShareLink(base)
			if err != nil {
				return err
			}
			if link == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active list selected (use 'pc list use ID')")
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", app.shareBase, "Base URL the link points at")
	return cmd
}
