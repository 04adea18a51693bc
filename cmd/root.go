package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pc",
		Short:         "PubCrawl CLI (pc): shared checklists with per-participant sign-off",
		Long:          "pc manages a hub of checklists: ordered checkpoints broken into subtasks that each named participant signs off on. State lives in a local hub file and can be shared as links or JSON exports.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newListCmd(app),
		newParticipantCmd(app),
		newCheckpointCmd(app),
		newSubtaskCmd(app),
		newShowCmd(app),
		newShareCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return rootCmd
}
