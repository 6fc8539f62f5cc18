package pathmap

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/progress"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
	"github.com/shinypath/shinypath/internal/ui/theme"
)

const sidebarWidth = 30

func (s *PathMapScreen) View(width, height int) string {
	if len(s.sections) == 0 {
		return ""
	}

	if s.sess.Phase() == session.PhaseGameOver {
		return s.renderGameOverBanner(width)
	}

	sidebarW := sidebarWidth
	if layout.IsCompactWidth(width) {
		sidebarW = 24
	}
	mainW := max(20, width-sidebarW-3)

	sidebar := lipgloss.NewStyle().
		Width(sidebarW).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(s.renderSections())

	main := lipgloss.JoinVertical(lipgloss.Left,
		s.renderStatusBar(mainW),
		"",
		s.renderSectionHeader(mainW),
		"",
		s.renderIslands(mainW),
		s.renderNotice(mainW),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
}

// renderSections draws the section switcher as a menu whose selection
// follows the browsed section.
func (s *PathMapScreen) renderSections() string {
	items := make([]components.MenuItem, 0, len(s.sections))
	for _, id := range s.sections {
		sec, _ := s.sess.Catalog().Section(id)
		done, total := s.sess.Tracker().SectionProgress(id)
		label := strings.TrimSpace(sec.Icon + " " + sec.Title)
		if !s.sectionOpen(id) {
			label = progress.StatusLocked.Icon() + " " + sec.Title
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Detail:   fmt.Sprintf("%d/%d islands", done, total),
			Disabled: !s.sectionOpen(id),
		})
	}
	menu := components.NewMenu(items)
	menu.Selected = s.sectionIdx

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(1, 0, 1, 2).
		Render("SECTIONS")
	return heading + "\n" + menu.View()
}

// renderStatusBar shows accuracy and achievement count next to the
// header's lives, points and streak.
func (s *PathMapScreen) renderStatusBar(width int) string {
	st := s.sess.Engine().State()
	acc := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("🎯 Accuracy %d%%", s.sess.Engine().Accuracy()))
	ach := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("🏆 %d/%d achievements", len(st.Achievements), len(gamification.AllAchievements())))
	best := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Best streak %d", st.MaxStreak))
	return lipgloss.NewStyle().Width(width).Padding(1, 0, 0, 2).
		Render(acc + "   " + ach + "   " + best)
}

func (s *PathMapScreen) renderSectionHeader(width int) string {
	sec, _ := s.sess.Catalog().Section(s.section())
	done, total := s.sess.Tracker().SectionProgress(sec.ID)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(0, 0, 0, 2).
		Render(strings.ToUpper(sec.Title))
	desc := ""
	if sec.Description != "" {
		desc = "\n" + theme.Hint.Padding(0, 0, 0, 2).Render(sec.Description)
	}
	bar := components.NewProgressBar("", done, total, min(width-4, 50))
	return title + desc + "\n\n  " + bar.View()
}

func (s *PathMapScreen) renderIslands(width int) string {
	var lines []string
	for i, n := range s.nodes() {
		lines = append(lines, renderIsland(n, i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

// renderIsland renders one island row: status, kind, name and label.
func renderIsland(n progress.Node, selected bool, width int) string {
	kindWidth := 16
	labelWidth := 10
	nameWidth := max(10, width-kindWidth-labelWidth-12)

	name := n.Name
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	var nameStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case n.Status == progress.StatusCompleted:
		nameStyle = theme.Completed
		labelStyle = theme.Completed
	case n.Status == progress.StatusUnlocked:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	kind := fmt.Sprintf("%s %-*s", n.Kind.Icon(), kindWidth-3, n.Kind.DisplayName())
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		n.Status.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(kind),
		labelStyle.Render(fmt.Sprintf("%*s", labelWidth, statusLabel(n.Status))),
	)
}

func statusLabel(st progress.Status) string {
	switch st {
	case progress.StatusCompleted:
		return "Done"
	case progress.StatusUnlocked:
		return "Open"
	default:
		return "Locked"
	}
}

func (s *PathMapScreen) renderNotice(width int) string {
	if s.notice != "" {
		return "\n" + lipgloss.NewStyle().Width(width).Padding(0, 0, 0, 2).
			Foreground(theme.Accent).Render(s.notice)
	}
	if s.sess.Tracker().IsComplete() {
		return "\n" + lipgloss.NewStyle().Width(width).Padding(0, 0, 0, 2).
			Foreground(theme.Success).Bold(true).
			Render("🏁 Path complete! Every island is yours.")
	}
	return ""
}

func (s *PathMapScreen) renderGameOverBanner(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You ran out of lives. Press Enter to see your results."))
	return b.String()
}

