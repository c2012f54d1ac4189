package cmd

import (
	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/render/choices"
	"github.com/spf13/cobra"
)

func newIdentifyCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "identify <question>",
		Short: "Show which roster players a question refers to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := questionFromArgs(args)
			if err != nil {
				return err
			}
			if err := app.loadRoster(cmd.Context()); err != nil {
				return err
			}

			identification, err := app.identify.Identify(question)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, identification)
			}
			rendered, renderErr := choices.Identification(identification)
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
