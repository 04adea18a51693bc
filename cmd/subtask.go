package cmd

import (
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSubtaskCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subtask",
		Aliases: []string{"st"},
		Short:   "Manage subtasks and per-participant sign-off",
	}

	cmd.AddCommand(
		newSubtaskAddCmd(app),
		newSubtaskRenameCmd(app),
		newSubtaskToggleCmd(app),
		newSubtaskCheckAllCmd(app),
	)

	return cmd
}

func newSubtaskAddCmd(app *app) *cobra.Command {
	var assign []string

	cmd := &cobra.Command{
		Use:   "add CHECKPOINT_ID NAME",
		Short: "Append a subtask to a checkpoint of the active list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			participants := make(map[string]bool, len(assign))
			for _, name := range assign {
				participants[name] = false
			}

			subtask, err := session.AddSubtask(cmd.Context(), domain.CheckpointID(args[0]), args[1], participants)
			if err != nil {
				return err
			}
			if subtask == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active list selected (use 'pc list use ID')")
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created subtask %s (%s)\n", subtask.Name, subtask.ID)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&assign, "assign", nil, "Participants to assign (repeatable or comma-separated)")
	return cmd
}

func newSubtaskRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename CHECKPOINT_ID SUBTASK_ID NAME",
		Short: "Rename a subtask",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.RenameSubtask(cmd.Context(), domain.CheckpointID(args[0]), domain.SubtaskID(args[1]), args[2])
		},
	}
}

func newSubtaskToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle CHECKPOINT_ID SUBTASK_ID PARTICIPANT",
		Short: "Flip one participant's sign-off on a subtask",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.ToggleParticipantDone(cmd.Context(), domain.CheckpointID(args[0]), domain.SubtaskID(args[1]), args[2])
		},
	}
}

func newSubtaskCheckAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-all CHECKPOINT_ID SUBTASK_ID",
		Short: "Mark every assigned participant as done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			return session.CheckAllSubtaskParticipants(cmd.Context(), domain.CheckpointID(args[0]), domain.SubtaskID(args[1]))
		},
	}
}
