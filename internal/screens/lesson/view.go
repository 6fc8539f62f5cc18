package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/ui/layout"
	"github.com/shinypath/shinypath/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	l := s.visit.Lesson
	bodyW := min(width-8, 76)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	if l.Content != "" {
		text := theme.Body.Width(bodyW).Render(l.Content)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
		b.WriteString("\n\n")
	}

	switch l.Kind {
	case catalog.KindContent:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.read.View()))
		b.WriteString("\n")
	case catalog.KindQuestion:
		s.choice.Width = bodyW
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	case catalog.KindCodeError:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(bodyW).
			Render(l.CodeError.Prompt)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n\n")
		code := theme.Panel.Render(strings.TrimRight(s.lines.View(), "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, code))
		b.WriteString("\n")
		if s.result == nil {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(fmt.Sprintf("%d line(s) flagged", len(s.lines.Flagged)))))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("Error: " + s.errMsg))
	}

	if s.result != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *LessonScreen) renderInfoLine(width int) string {
	l := s.visit.Lesson
	sec, _ := s.sess.Catalog().Section(l.Section)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", l.Kind.Icon(), l.Kind.DisplayName()))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.TrimSpace(sec.Icon + " " + sec.Title))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderFeedback renders the outcome panel shown after answering.
func (s *LessonScreen) renderFeedback(width int) string {
	res := s.result
	center := func(style lipgloss.Style, text string) string {
		return layout.Centered(style, width, text) + "\n"
	}

	var b strings.Builder
	switch {
	case res.Outcome.Kind == catalog.KindContent:
		b.WriteString(center(theme.Correct.Bold(true), fmt.Sprintf("✓ Island complete!  +%d points", res.Award)))
	case res.Outcome.Correct:
		b.WriteString(center(theme.Correct.Bold(true), fmt.Sprintf("✓ Correct!  +%d points", res.Award)))
	default:
		b.WriteString(center(theme.Incorrect.Bold(true), "✗ Not quite. You lost a life."))
		if res.StreakLost {
			b.WriteString(center(theme.Hint, "Your streak was reset."))
		}
	}

	if ce := s.visit.Lesson.CodeError; ce != nil && ce.Explanation != "" {
		b.WriteString("\n")
		exp := theme.Body.Width(min(width-8, 70)).Render(ce.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	for _, a := range res.NewAchievements {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			"Achievement unlocked! "+a.Label()))
	}

	b.WriteString("\n")
	switch {
	case res.GameOver:
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "No lives left. Game over."))
	case res.PathComplete:
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "🏁 Path complete!"))
	case res.Unlocked != "":
		next, _ := s.sess.Catalog().Lesson(res.Unlocked)
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
			"🏝 Next island unlocked: "+next.Name))
	}

	b.WriteString("\n")
	b.WriteString(center(theme.Hint, "Press Enter to continue"))
	return b.String()
}
