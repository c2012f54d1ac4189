package choices

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/application"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

// Choices renders a session's numbered options. Blocking sessions also show
// each player's recency status.
func Choices(kind domain.SessionKind, choices []domain.Choice, question string) (string, error) {
	return render(func(s styles) string {
		return choicesView(kind, choices, question, s)
	})
}

func Decision(decision application.Decision) (string, error) {
	return render(func(s styles) string {
		return decisionView(decision, s)
	})
}

func Identification(identification application.Identification) (string, error) {
	return render(func(s styles) string {
		return identificationView(identification, s)
	})
}

func Roster(entries []domain.RosterEntry) (string, error) {
	return render(func(s styles) string {
		return rosterView(entries, s)
	})
}

func choicesView(kind domain.SessionKind, choices []domain.Choice, question string, s styles) string {
	title := "Which player did you mean?"
	if kind == domain.SessionKindBlocking {
		title = "All of these players were asked about recently"
	}

	lines := []string{s.title.Render(title)}
	if strings.TrimSpace(question) != "" {
		lines = append(lines, s.question.Render(fmt.Sprintf("%q", question)))
	}

	for _, choice := range choices {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			s.index.Render(fmt.Sprintf("%d.", choice.Index)),
			" ",
			entryLabel(choice.Entry, s),
		)
		if kind == domain.SessionKindBlocking {
			line += " " + s.status.Render("· "+choice.Status.Label())
		}
		lines = append(lines, line)
	}

	if len(choices) > 0 {
		lines = append(lines, s.section.Render(s.header.Render(fmt.Sprintf("reply with a number (1-%d)", len(choices)))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func decisionView(decision application.Decision, s styles) string {
	var lines []string

	switch decision.Verdict {
	case application.VerdictProceed:
		lines = append(lines, s.proceed.Render("Proceed"))
		if decision.Entry == nil {
			lines = append(lines, s.detail.Render("no player identified"))
			break
		}
		status := domain.RecencyNone
		if decision.Recency != nil {
			status = decision.Recency.Status
		}
		lines = append(lines, entryLabel(*decision.Entry, s)+" "+s.status.Render("· "+status.Label()))
	case application.VerdictIgnored:
		lines = append(lines, s.ignored.Render("Ignored"), s.detail.Render("a selection is already open for you"))
	default:
		lines = append(lines, s.blocked.Render("Blocked"), s.detail.Render(blockedReason(decision)))
		if decision.Recency != nil && decision.Recency.Ref != "" {
			lines = append(lines, s.header.Render(fmt.Sprintf("see question %s", decision.Recency.Ref)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func blockedReason(decision application.Decision) string {
	label := "this player"
	if decision.Entry != nil {
		label = decision.Entry.Label()
	}

	switch decision.Reason {
	case application.BlockMultipleEntities:
		names := make([]string, 0, len(decision.Resolution.Matches))
		for _, match := range decision.Resolution.Matches {
			names = append(names, match.Entry.DisplayName)
		}
		return fmt.Sprintf("ask about one player at a time (%s)", strings.Join(names, ", "))
	case application.BlockPending:
		return fmt.Sprintf("%s already has a pending question", label)
	case application.BlockAnswered:
		return fmt.Sprintf("%s was already answered recently", label)
	case application.BlockSelectionTimeout:
		return "no selection was made in time"
	case application.BlockSelectionCancelled:
		return "the selection was cancelled"
	default:
		return string(decision.Reason)
	}
}

func identificationView(identification application.Identification, s styles) string {
	lines := []string{
		s.title.Render("Identification"),
		s.header.Render(fmt.Sprintf("resolution: %s", identification.Resolution.Kind)),
	}

	candidates := make([]string, 0, len(identification.Candidates))
	for _, candidate := range identification.Candidates {
		candidates = append(candidates, candidate.Text)
	}
	lines = append(lines, s.header.Render(fmt.Sprintf("candidates: %s", strings.Join(candidates, " | "))))

	if len(identification.Resolution.Signals) > 0 {
		lines = append(lines, s.header.Render(fmt.Sprintf("signals: %s", strings.Join(identification.Resolution.Signals, ", "))))
	}

	if len(identification.Resolution.Matches) == 0 {
		lines = append(lines, s.empty.Render("No player identified."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	matches := make([]string, 0, len(identification.Resolution.Matches))
	for _, match := range identification.Resolution.Matches {
		matches = append(matches, fmt.Sprintf("%s %s",
			entryLabel(match.Entry, s),
			s.team.Render(fmt.Sprintf("%s %.2f", match.Type, match.Score)),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, matches...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func rosterView(entries []domain.RosterEntry, s styles) string {
	lines := []string{
		s.title.Render("Roster"),
		s.header.Render(fmt.Sprintf("players: %d", len(entries))),
	}
	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No players loaded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %s", s.team.Render(string(entry.ID)), entryLabel(entry, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func entryLabel(entry domain.RosterEntry, s styles) string {
	label := s.entry.Render(entry.DisplayName)
	if team := strings.TrimSpace(entry.Team); team != "" {
		label += " " + s.team.Render("("+team+")")
	}
	return label
}
