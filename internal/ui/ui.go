// Package ui renders the status line in the terminal.
package ui

import (
	"context"
	"time"

	"codeberg.org/mutker/statusbar/internal/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model redraws the bar every interval.
type Model struct {
	bar      *Bar
	interval time.Duration
	latest   Segments
}

func New(bar *Bar, interval time.Duration) *Model {
	return &Model{
		bar:      bar,
		interval: interval,
		latest:   bar.Refresh(),
	}
}

type tickMsg time.Time

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.latest = m.bar.Refresh()
		return m, m.tick()
	}
	return m, nil
}

// Styles
var (
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	segmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	separator    = subtleStyle.Render(" | ")
)

func (m *Model) View() string {
	parts := []string{
		clockStyle.Render(m.latest.Clock),
		separator,
		segmentStyle.Render(m.latest.CPU),
	}
	if m.latest.Battery != "" {
		parts = append(parts, separator, segmentStyle.Render(m.latest.Battery))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...) + "\n"
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, bar *Bar, interval time.Duration) error {
	prog := tea.NewProgram(New(bar, interval), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
