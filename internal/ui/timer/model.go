package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "ascend/internal/modules/session/dto"
	"ascend/internal/ui/theme"
)

// capSeconds is where credit stops accruing; past it the timer turns into a
// warning so the user finalizes instead of grinding dead minutes.
const capSeconds = 120 * 60

type sessionPort interface {
	Active(ctx context.Context) (sessiondto.ActiveOutput, error)
}

type tickMsg time.Time

type activeMsg struct {
	active sessiondto.ActiveOutput
	err    error
}

// Model renders the running session as a live full-screen timer. The model
// only reads; finalizing stays on the command line so the reflection form
// cannot be skipped by a stray keypress.
type Model struct {
	session sessionPort
	active  sessiondto.ActiveOutput
	loaded  bool
	err     error
	width   int
	height  int
}

func New(session sessionPort) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadActiveCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.session.Active(context.Background())
		return activeMsg{active: active, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case activeMsg:
		m.loaded = true
		m.active = msg.active
		m.err = msg.err
		if msg.err != nil {
			return m, tea.Quit
		}
	case tickMsg:
		if m.loaded {
			m.active.ElapsedSeconds++
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading session...")
	}
	if m.err != nil {
		return theme.Muted.Render("no active session") + "\n"
	}

	elapsed := m.active.ElapsedSeconds
	clock := theme.Title.Render(formatClock(elapsed))

	lines := []string{
		clock,
		"",
		m.describeSession(),
		theme.Muted.Render(fmt.Sprintf("minimum %d min to count", m.active.MinimumMinutes)),
	}
	if m.active.EvidenceKind != "" {
		lines = append(lines, theme.Good.Render("evidence attached: "+m.active.EvidenceKind))
	} else if m.active.AuditRequired {
		lines = append(lines, theme.Hot.Render("photo evidence required for this session"))
	}
	if elapsed >= capSeconds {
		lines = append(lines, "", theme.Danger.Render("credit capped at 120 min, finalize now"))
	}
	lines = append(lines, "", theme.Muted.Render("q: leave timer (session keeps running)"))

	pane := theme.Pane.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return pane
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) describeSession() string {
	if m.active.Kind == "mock" {
		return fmt.Sprintf("%s mock  ·  %s", m.active.MockType, m.active.Subject)
	}
	label := m.active.Subject
	if m.active.Topic != "" {
		label += " / " + m.active.Topic
	}
	return fmt.Sprintf("study  ·  %s  ·  %s", label, m.active.Phase)
}

func formatClock(seconds int) string {
	h := seconds / 3600
	mnt := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, mnt, s)
}
