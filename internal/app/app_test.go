package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/router"
	"github.com/shinypath/shinypath/internal/screens/pathmap"
	"github.com/shinypath/shinypath/internal/session"
)

func sized(t *testing.T) (AppModel, *session.Session) {
	t.Helper()
	sess := session.New(catalog.Default())
	m := newAppModel(sess, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel), sess
}

// step feeds msg to the model and drains the resulting router command.
func step(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd != nil {
		switch out := cmd().(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
			updated, _ = m.Update(out)
			m = updated.(AppModel)
		}
	}
	return m
}

func TestApp_WelcomeHandsOverToMap(t *testing.T) {
	m, _ := sized(t)

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*pathmap.PathMapScreen); !ok {
		t.Fatalf("active screen = %T, want path map", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestApp_HeaderShowsGameStatus(t *testing.T) {
	m, sess := sized(t)
	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	v, err := sess.Open("ilha-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.AcknowledgeContent(v); err != nil {
		t.Fatal(err)
	}

	frame := ansi.Strip(m.render())
	if !strings.Contains(frame, "★ 5") || !strings.Contains(frame, "⚡ 1") {
		t.Errorf("header missing status:\n%s", frame)
	}
	if !strings.Contains(frame, "Achievements") {
		t.Error("footer should show path map hints")
	}
}

func TestApp_WelcomeHidesStatus(t *testing.T) {
	m, _ := sized(t)

	frame := ansi.Strip(m.render())
	if strings.Contains(frame, "♥") || strings.Contains(frame, "⚡") {
		t.Errorf("splash header should not show game status:\n%s", frame)
	}
}

func TestApp_EscPopsLesson(t *testing.T) {
	m, _ := sized(t)
	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want lesson pushed", m.router.Depth())
	}

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 after Esc", m.router.Depth())
	}
}

func TestApp_TooSmall(t *testing.T) {
	sess := session.New(catalog.Default())
	m := newAppModel(sess, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
