package cmd

import (
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage checklists",
	}

	cmd.AddCommand(
		newListAddCmd(app),
		newListLsCmd(app),
		newListUseCmd(app),
		newListRenameCmd(app),
		newListArchiveCmd(app),
		newListRestoreCmd(app),
		newListRmCmd(app),
	)

	return cmd
}

func newListAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new list and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, err := session.AddList(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created list %s (%s)\n", list.Name, list.ID)
			return nil
		},
	}
}

func newListLsCmd(app *app) *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List checklists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			lists := session.Lists()
			if archived {
				lists = session.ArchivedLists()
			}

			for _, l := range lists {
				marker := " "
				if l.ID == session.Hub().ActiveListID {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, l.ID, l.Name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "Show archived lists instead")
	return cmd
}

func newListUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use ID",
		Short: "Select the active list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.SetActiveList(cmd.Context(), domain.ListID(args[0]))
		},
	}
}

func newListRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.RenameList(cmd.Context(), domain.ListID(args[0]), args[1])
		},
	}
}

func newListArchiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a list (restorable for 30 days)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.ArchiveList(cmd.Context(), domain.ListID(args[0]))
		},
	}
}

func newListRestoreCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Restore an archived list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.RestoreList(cmd.Context(), domain.ListID(args[0]))
		},
	}
}

func newListRmCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Permanently delete a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("permanently deleting a list cannot be undone; pass --yes to confirm")
			}

			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.DeleteList(cmd.Context(), domain.ListID(args[0]))
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm permanent deletion")
	return cmd
}
