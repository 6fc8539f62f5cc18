package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/store"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
	"github.com/shinypath/shinypath/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// AchievementsScreen lists every achievement, whether the current run
// has unlocked it, and how often it was earned across all runs.
type AchievementsScreen struct {
	sess    *session.Session
	journal store.EventRepo
	stats   *store.Stats
	errMsg  string
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates an AchievementsScreen. journal may be nil.
func New(sess *session.Session, journal store.EventRepo) *AchievementsScreen {
	return &AchievementsScreen{sess: sess, journal: journal}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	if s.journal == nil {
		return nil
	}
	return func() tea.Msg {
		st, err := s.journal.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Back, components.Keys.Quit)
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = &msg.Stats
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	engine := s.sess.Engine()
	all := gamification.AllAchievements()

	unlocked := 0
	for _, a := range all {
		if engine.HasAchievement(a) {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked this run: %d/%d\n", unlocked, len(all))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, a := range all {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderCard(a)))
		b.WriteString("\n")
	}

	switch {
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\nError: %s", s.errMsg)))
	case s.stats != nil:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\nAcross %d sessions: best score %d, best streak %d",
				s.stats.Sessions, s.stats.BestPoints, s.stats.BestStreak)))
	}

	return b.String()
}

func (s *AchievementsScreen) renderCard(a gamification.Achievement) string {
	has := s.sess.Engine().HasAchievement(a)

	icon := a.Icon()
	nameStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if !has {
		icon = "🔒"
		nameStyle = theme.Locked
		descStyle = theme.Locked
	}

	earned := ""
	if s.stats != nil {
		if n := s.stats.Achievements[string(a)]; n > 0 {
			earned = fmt.Sprintf("  earned %d×", n)
		}
	}

	body := fmt.Sprintf("%s %s%s\n%s",
		icon,
		nameStyle.Render(a.DisplayName()),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(earned),
		descStyle.Render(a.Description()))

	border := theme.Border
	if has {
		border = theme.Accent
	}
	return lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(body)
}
