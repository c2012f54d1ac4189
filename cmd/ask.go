package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/render/choices"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/application"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const selectionRetryInterval = 10 * time.Millisecond

func newAskCmd(app *app) *cobra.Command {
	var (
		requester string
		asJSON    bool
		noRecord  bool
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Run a question through the gate and record it when it may proceed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := questionFromArgs(args)
			if err != nil {
				return err
			}
			if err := app.loadRoster(cmd.Context()); err != nil {
				return err
			}

			decision, err := runAsk(cmd, app, application.AskCommand{
				Requester: domain.RequesterID(requester),
				Question:  question,
			}, asJSON)
			if err != nil {
				return err
			}

			var recorded *domain.HistoryMessage
			if decision.Proceeds() && !noRecord {
				msg, err := app.history.RecordPending(cmd.Context(), application.RecordPendingCommand{
					Asker:    requester,
					Question: question,
					Entry:    decision.Entry,
				})
				if err != nil {
					return err
				}
				recorded = &msg
			}

			if asJSON {
				return writeJSON(cmd, askOutput{Decision: decision, Recorded: recorded})
			}
			rendered, renderErr := choices.Decision(decision)
			if err := writeRendered(cmd, rendered, renderErr); err != nil {
				return err
			}
			if recorded != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "question id %s\n", recorded.Ref)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&requester, "requester", "", "Requester ID that owns any selection prompt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record the question as pending")
	_ = cmd.MarkFlagRequired("requester")

	return cmd
}

type askOutput struct {
	Decision application.Decision
	Recorded *domain.HistoryMessage `json:",omitempty"`
}

// runAsk runs the gate. Questions that need a selection prompt read the
// requester's choice from stdin; the rest run behind the recency spinner.
func runAsk(cmd *cobra.Command, app *app, ask application.AskCommand, asJSON bool) (application.Decision, error) {
	identification, err := app.identify.Identify(ask.Question)
	if err != nil {
		return application.Decision{}, err
	}

	if identification.Resolution.Kind == domain.ResolutionHomonymSession {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go forwardSelection(ctx, cmd.InOrStdin(), app, ask.Requester)
		return app.questions.AskIdentified(ctx, ask, identification)
	}

	check := func(ctx context.Context) (application.Decision, error) {
		return app.questions.AskIdentified(ctx, ask, identification)
	}

	if asJSON {
		return check(cmd.Context())
	}
	return runRecencySpinner(cmd.Context(), cmd.ErrOrStderr(), spinnerLabel(identification), check)
}

// forwardSelection hands the first line of input to the requester's session,
// retrying until the prompt is awaiting input or ctx ends.
func forwardSelection(ctx context.Context, in io.Reader, app *app, requester domain.RequesterID) {
	lines := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		if scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	var line string
	select {
	case <-ctx.Done():
		return
	case l, ok := <-lines:
		if !ok {
			return
		}
		line = l
	}

	ticker := time.NewTicker(selectionRetryInterval)
	defer ticker.Stop()
	for {
		if outcome, ok := app.sessions.SelectInput(requester, requester, line); ok {
			app.logger.Debug("selection applied", zap.String("state", string(outcome.State)), zap.Int("choice", outcome.Choice))
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func spinnerLabel(identification application.Identification) string {
	if entry := identification.Resolution.Entry; entry != nil {
		return fmt.Sprintf("Checking recent questions about %s...", sanitizeForTerminal(entry.Label()))
	}
	return "Checking recent questions..."
}
