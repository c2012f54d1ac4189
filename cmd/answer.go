package cmd

import (
	"fmt"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/application"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newAnswerCmd(app *app) *cobra.Command {
	var (
		ref      string
		reply    string
		answerer string
	)

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Record an expert reply for a pending question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := app.history.RecordAnswer(cmd.Context(), application.RecordAnswerCommand{
				Ref:      domain.MessageRef(ref),
				Reply:    sanitizeForTerminal(reply),
				Answerer: sanitizeForTerminal(answerer),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Answered question %s\n", msg.Ref)
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Question id of the pending question")
	cmd.Flags().StringVar(&reply, "reply", "", "Expert reply text")
	cmd.Flags().StringVar(&answerer, "answerer", "expert", "Name shown as the answerer")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("reply")

	return cmd
}
