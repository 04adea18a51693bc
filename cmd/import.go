package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *app) *cobra.Command {
	var link string

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import an exported JSON file or a share link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			if link != "" {
				if len(args) > 0 {
					return fmt.Errorf("pass either a file or --link, not both")
				}
				if err := session.ImportShareLink(cmd.Context(), link); err != nil {
					return fmt.Errorf("import failed: invalid or corrupted link: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "imported shared list")
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("pass a file to import or --link")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			if err := session.ImportPayload(cmd.Context(), data); err != nil {
				return fmt.Errorf("import failed: invalid or corrupted file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&link, "link", "", "Share link (or bare token) to import")
	return cmd
}
