package pathmap

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/progress"
	"github.com/shinypath/shinypath/internal/router"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/screens/achievements"
	"github.com/shinypath/shinypath/internal/screens/history"
	"github.com/shinypath/shinypath/internal/screens/lesson"
	"github.com/shinypath/shinypath/internal/screens/summary"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/store"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
)

// PathMapScreen shows the islands of one section at a time with a
// section switcher on the left.
type PathMapScreen struct {
	sess       *session.Session
	journal    store.EventRepo
	sections   []catalog.SectionID
	sectionIdx int
	cursor     int
	notice     string
}

var _ screen.Screen = (*PathMapScreen)(nil)
var _ screen.KeyHintProvider = (*PathMapScreen)(nil)

// New creates a PathMapScreen. journal may be nil, in which case the
// sessions screen is not offered.
func New(sess *session.Session, journal store.EventRepo) *PathMapScreen {
	s := &PathMapScreen{
		sess:     sess,
		journal:  journal,
		sections: sess.Tracker().Sections(),
	}
	s.focusFrontier()
	return s
}

// Init refocuses the current section. It runs again whenever a screen
// above the map is popped.
func (s *PathMapScreen) Init() tea.Cmd {
	s.notice = ""
	s.focusFrontier()
	return nil
}

func (s *PathMapScreen) Title() string {
	sec, ok := s.sess.Catalog().Section(s.section())
	if !ok {
		return "Path"
	}
	return sec.Title
}

func (s *PathMapScreen) KeyHints() []layout.KeyHint {
	if s.sess.Phase() == session.PhaseGameOver {
		return components.Hints(
			components.WithDesc(components.Keys.Select, "Results"),
			components.Keys.Quit,
		)
	}
	hints := []key.Binding{
		components.Keys.Up,
		components.Keys.NextSection,
		components.WithDesc(components.Keys.Select, "Open"),
		components.Keys.Achievements,
	}
	if s.journal != nil {
		hints = append(hints, components.Keys.History)
	}
	return components.Hints(append(hints, components.Keys.Quit)...)
}

func (s *PathMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, components.Keys.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, components.Keys.NextSection):
		s.switchSection(1)
	case key.Matches(kmsg, components.Keys.PrevSection):
		s.switchSection(-1)
	case key.Matches(kmsg, components.Keys.Select):
		return s, s.open()
	case key.Matches(kmsg, components.Keys.Achievements):
		return s, push(achievements.New(s.sess, s.journal))
	case key.Matches(kmsg, components.Keys.History):
		if s.journal != nil {
			return s, push(history.New(s.journal))
		}
	}
	return s, nil
}

// open starts a visit to the island under the cursor.
func (s *PathMapScreen) open() tea.Cmd {
	if s.sess.Phase() == session.PhaseGameOver {
		return push(summary.New(s.sess))
	}

	nodes := s.nodes()
	if len(nodes) == 0 {
		return nil
	}
	n := nodes[s.cursor]

	visit, err := s.sess.Open(n.ID)
	switch {
	case errors.Is(err, session.ErrLessonLocked):
		s.notice = "🔒 Finish the previous island to unlock " + n.Name
		return nil
	case err != nil:
		s.notice = err.Error()
		return nil
	}
	s.notice = ""
	return push(lesson.New(s.sess, visit))
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

func (s *PathMapScreen) section() catalog.SectionID {
	if len(s.sections) == 0 {
		return ""
	}
	return s.sections[s.sectionIdx]
}

func (s *PathMapScreen) nodes() []progress.Node {
	return s.sess.Tracker().SectionNodes(s.section())
}

func (s *PathMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	if next >= 0 && next < len(s.nodes()) {
		s.cursor = next
	}
}

// switchSection moves to the neighbouring section. Sections are browsable
// even while locked.
func (s *PathMapScreen) switchSection(delta int) {
	if len(s.sections) == 0 {
		return
	}
	s.sectionIdx = (s.sectionIdx + delta + len(s.sections)) % len(s.sections)
	s.notice = ""
	s.cursorToFrontier()
}

// focusFrontier selects the section holding the learner's current
// position and puts the cursor on its frontier island.
func (s *PathMapScreen) focusFrontier() {
	current := s.sess.Tracker().CurrentSection()
	for i, id := range s.sections {
		if id == current {
			s.sectionIdx = i
		}
	}
	s.cursorToFrontier()
}

func (s *PathMapScreen) cursorToFrontier() {
	s.cursor = 0
	frontier, ok := s.sess.Tracker().Frontier(s.section())
	if !ok {
		return
	}
	for i, n := range s.nodes() {
		if n.ID == frontier.ID {
			s.cursor = i
			return
		}
	}
}

// sectionOpen reports whether the section's first island is reachable.
func (s *PathMapScreen) sectionOpen(id catalog.SectionID) bool {
	nodes := s.sess.Tracker().SectionNodes(id)
	return len(nodes) > 0 && nodes[0].Status != progress.StatusLocked
}
