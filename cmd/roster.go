package cmd

import (
	"fmt"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/render/choices"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the player roster",
	}

	cmd.AddCommand(
		newRosterListCmd(app),
		newRosterShowCmd(app),
		newRosterAddCmd(app),
	)

	return cmd
}

func newRosterListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roster players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.rosterRepo.GetAllEntries(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, entries)
			}
			rendered, renderErr := choices.Roster(entries)
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newRosterShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one roster player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadRoster(cmd.Context()); err != nil {
				return err
			}
			entry, err := app.roster.Lookup(domain.EntryID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, entry)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", sanitizeForTerminal(entry.Label()), entry.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newRosterAddCmd(app *app) *cobra.Command {
	var (
		id   string
		name string
		team string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update a roster player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := domain.RosterEntry{
				ID:          domain.EntryID(id),
				DisplayName: sanitizeForTerminal(name),
				Team:        sanitizeForTerminal(team),
			}
			if err := app.rosterRepo.Save(cmd.Context(), entry); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", entry.Label(), entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Player ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&team, "team", "", "Team")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
