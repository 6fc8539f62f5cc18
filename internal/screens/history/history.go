package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/store"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
	"github.com/shinypath/shinypath/internal/ui/theme"
)

const maxSessions = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEvent
	Err      error
}

// HistoryScreen lists finished runs from the journal, newest first.
type HistoryScreen struct {
	journal  store.EventRepo
	sessions []store.SessionEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(journal store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		journal:  journal,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.journal.RecentSessions(context.Background(), store.QueryOpts{Limit: maxSessions})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Sessions"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return components.Hints(
		components.WithDesc(components.Keys.Select, "Details"),
		components.Keys.Up,
		components.Keys.Back,
	)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.Keys.Down):
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case key.Matches(msg, components.Keys.Select):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading sessions...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished sessions yet. Go explore the path!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-10s  ★ %-4d  ⚡ %-3d  %3d%% accuracy",
			prefix,
			ev.Timestamp.Format("Jan 02, 2006 15:04"),
			actionLabel(ev.Action),
			ev.Points,
			ev.MaxStreak,
			gamification.Accuracy(ev.Correct, ev.Attempts))

		style := lipgloss.NewStyle().Foreground(actionColor(ev.Action))
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d/%d answers correct, %d lives left, session %s",
				ev.Correct, ev.Attempts, ev.Lives, shortID(ev.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func actionLabel(action string) string {
	switch action {
	case store.ActionGameOver:
		return "Game over"
	case store.ActionComplete:
		return "Completed"
	default:
		return "Ended"
	}
}

func actionColor(action string) color.Color {
	switch action {
	case store.ActionGameOver:
		return theme.Error
	case store.ActionComplete:
		return theme.Success
	default:
		return theme.Text
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
