package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var (
		listFlag string
		hub      bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active list (or the whole hub) as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			var (
				data     []byte
				filename string
			)

			if hub {
				data, err = session.ExportHub()
				filename = "hub.json"
			} else {
				list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
				if !ok {
					return nil
				}
				data, filename, err = session.ExportList(list.ID)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			if output == "-" {
				output = filename
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	cmd.Flags().BoolVar(&hub, "hub", false, "Export every list as a hub payload")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file ('-' picks a name from the list)")
	return cmd
}
