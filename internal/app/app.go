package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/router"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/screens/pathmap"
	"github.com/shinypath/shinypath/internal/screens/welcome"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/store"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome screen and
// then shows the path map.
func newAppModel(sess *session.Session, journal store.EventRepo) AppModel {
	splash := welcome.New(func() screen.Screen {
		return pathmap.New(sess, journal)
	})
	return AppModel{
		router: router.New(splash),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status returns the gamification counters shown in the header.
func (m AppModel) status() layout.Status {
	st := m.sess.Engine().State()
	return layout.Status{
		Lives:    st.Lives,
		MaxLives: st.MaxLives,
		Points:   st.Points,
		Streak:   st.Streak,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.status()
	if h, ok := active.(screen.StatusHider); ok && h.HideStatus() {
		st = layout.Status{}
	}
	header := layout.RenderHeader(title, st, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = components.Hints(components.Keys.Back, components.Keys.Quit)
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program for sess. journal may be nil.
func Run(sess *session.Session, journal store.EventRepo) error {
	p := tea.NewProgram(newAppModel(sess, journal))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
