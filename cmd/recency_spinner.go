package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/application"
)

var (
	recencyClearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	recencyRecentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type recencyCheckDoneMsg struct {
	decision application.Decision
	err      error
}

type recencySpinnerModel struct {
	spinner  spinner.Model
	label    string
	check    tea.Cmd
	decision application.Decision
	err      error
	done     bool
}

func newRecencySpinnerModel(label string, check tea.Cmd) recencySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return recencySpinnerModel{
		spinner: s,
		label:   label,
		check:   check,
	}
}

func (m recencySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.check)
}

func (m recencySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case recencyCheckDoneMsg:
		m.done = true
		m.decision = msg.decision
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View leaves the checked player's recency status behind once the check ends.
func (m recencySpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}
	if m.err != nil {
		return ""
	}
	return recencySummary(m.decision)
}

func recencySummary(decision application.Decision) string {
	if decision.Entry == nil || decision.Recency == nil {
		return ""
	}

	status := decision.Recency.Status
	line := fmt.Sprintf("%s: %s", sanitizeForTerminal(decision.Entry.Label()), status.Label())
	if status.Recent() {
		return recencyRecentStyle.Render("✗ "+line) + "\n"
	}
	return recencyClearStyle.Render("✓ "+line) + "\n"
}

// runRecencySpinner shows label behind a spinner on output until check returns.
func runRecencySpinner(ctx context.Context, output io.Writer, label string, check func(context.Context) (application.Decision, error)) (application.Decision, error) {
	checkCmd := func() tea.Msg {
		decision, err := check(ctx)
		return recencyCheckDoneMsg{decision: decision, err: err}
	}

	p := tea.NewProgram(
		newRecencySpinnerModel(label, checkCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.Decision{}, err
	}

	result, ok := finalModel.(recencySpinnerModel)
	if !ok {
		return application.Decision{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.decision, result.err
}
