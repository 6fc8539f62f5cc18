package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/router"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
	"github.com/shinypath/shinypath/internal/ui/theme"
)

// SummaryScreen shows the results of a run after game over or after the
// whole path is complete.
type SummaryScreen struct {
	sess     *session.Session
	summary  *session.Summary
	gameOver bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New snapshots the session's results.
func New(sess *session.Session) *SummaryScreen {
	return &SummaryScreen{
		sess:     sess,
		summary:  session.BuildSummary(sess),
		gameOver: sess.Phase() == session.PhaseGameOver,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.gameOver {
		return "Game Over"
	}
	return "Path Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.gameOver {
		return components.Hints(
			components.WithDesc(components.Keys.Select, "Restart"),
			components.Keys.Quit,
		)
	}
	return components.Hints(
		components.WithDesc(components.Keys.Select, "Map"),
		components.Keys.Restart,
		components.Keys.Quit,
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Restart),
		s.gameOver && key.Matches(kmsg, components.Keys.Select):
		s.sess.Restart()
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case key.Matches(kmsg, components.Keys.Select):
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return layout.Centered(style, width, text)
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.gameOver {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "GAME OVER"))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "You ran out of lives."))
	} else {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "🏁 PATH COMPLETE"))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Every island is yours."))
	}
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("★ Points: %d      ⚡ Max streak: %d      🎯 Accuracy: %d%%",
		sum.Points, sum.MaxStreak, sum.Accuracy)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), stats))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Islands: %d/%d      Answers: %d/%d correct",
			sum.Completed, sum.Total, sum.Correct, sum.Attempts)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(sum.Achievements) == 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "None this run"))
		b.WriteString("\n")
	}
	for _, a := range sum.Achievements {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent), a.Label()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Press Enter to try again"
	if !s.gameOver {
		hint = "Press Enter to return to the map, R to start over"
	}
	b.WriteString(center(theme.Hint, hint))

	return b.String()
}
