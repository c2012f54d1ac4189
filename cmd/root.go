package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "askbot",
		Short:         "askbot: identify the player a question is about and gate repeats",
		Long:          "askbot matches free-text questions against a player roster, asks the requester to pick when several players share a name, and blocks questions about players that were asked about or answered recently.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, debug)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newIdentifyCmd(app),
		newAskCmd(app),
		newAnswerCmd(app),
		newRosterCmd(app),
	)

	return rootCmd
}
