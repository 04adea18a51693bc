package cmd

import (
	"fmt"
	"strconv"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckpointCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkpoint",
		Aliases: []string{"cp"},
		Short:   "Manage the active list's checkpoints",
	}

	cmd.AddCommand(
		newCheckpointAddCmd(app),
		newCheckpointRenameCmd(app),
		newCheckpointMoveCmd(app),
		newCheckpointRmCmd(app),
		newCheckpointOwnerCmd(app),
		newCheckpointToggleCmd(app),
	)

	return cmd
}

func newCheckpointAddCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Append a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			checkpoint, err := session.AddCheckpoint(cmd.Context(), list.ID, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created checkpoint %s (%s)\n", checkpoint.Name, checkpoint.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newCheckpointRenameCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a checkpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			return session.RenameCheckpoint(cmd.Context(), list.ID, domain.CheckpointID(args[0]), args[1])
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newCheckpointMoveCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "move FROM TO",
		Short: "Reorder a checkpoint by index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse FROM index: %w", err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse TO index: %w", err)
			}

			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			return session.MoveCheckpoint(cmd.Context(), list.ID, from, to)
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newCheckpointRmCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			return session.DeleteCheckpoint(cmd.Context(), list.ID, domain.CheckpointID(args[0]))
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newCheckpointOwnerCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "owner ID [NAME]",
		Short: "Set or clear a checkpoint's owner",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			owner := ""
			if len(args) == 2 {
				owner = args[1]
			}

			return session.SetCheckpointOwner(cmd.Context(), list.ID, domain.CheckpointID(args[0]), owner)
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newCheckpointToggleCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "toggle ID",
		Short: "Expand or collapse a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			return session.ToggleCheckpointExpanded(cmd.Context(), list.ID, domain.CheckpointID(args[0]))
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}
