package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParticipantCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Manage a list's participants",
	}

	cmd.AddCommand(
		newParticipantAddCmd(app),
		newParticipantRmCmd(app),
		newParticipantLsCmd(app),
	)

	return cmd
}

func newParticipantAddCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a participant (no-op if already present)",
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

			return session.AddParticipant(cmd.Context(), list.ID, args[0])
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newParticipantRmCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a participant and their sign-offs from the list",
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

			return session.RemoveParticipant(cmd.Context(), list.ID, args[0])
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}

func newParticipantLsCmd(app *app) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List participants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.open(cmd.Context())
			if err != nil {
				return err
			}

			list, ok := resolveList(session, listFlag, cmd.OutOrStdout())
			if !ok {
				return nil
			}

			for _, p := range list.Participants {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&listFlag, "list", "", "List id (defaults to the active list)")
	return cmd
}
