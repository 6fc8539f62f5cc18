package lesson

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/router"
	"github.com/shinypath/shinypath/internal/screen"
	"github.com/shinypath/shinypath/internal/screens/summary"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/ui/components"
	"github.com/shinypath/shinypath/internal/ui/layout"
)

// acknowledgeMsg is sent when the learner finishes a reading lesson.
type acknowledgeMsg struct{}

// LessonScreen runs a single visit to an island.
type LessonScreen struct {
	sess   *session.Session
	visit  *session.Visit
	read   components.Button
	choice components.MultiChoice
	lines  components.LineSelector
	result *session.Result
	errMsg string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for an opened visit.
func New(sess *session.Session, visit *session.Visit) *LessonScreen {
	s := &LessonScreen{sess: sess, visit: visit}

	l := visit.Lesson
	switch l.Kind {
	case catalog.KindContent:
		s.read = components.NewButton("Mark as read", "Read", components.Keys.Select, func() tea.Msg {
			return acknowledgeMsg{}
		})
	case catalog.KindQuestion:
		s.choice = components.NewMultiChoice(l.Question.Prompt, l.Question.Answers, l.Question.CorrectIndex)
	case catalog.KindCodeError:
		s.lines = components.NewLineSelector(l.CodeError.Lines(), l.CodeError.ErrorLines)
	}
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.visit.Lesson.Name
}

// Result returns the outcome of the visit, or nil while unanswered.
func (s *LessonScreen) Result() *session.Result {
	return s.result
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		if s.result.GameOver {
			return components.Hints(components.WithDesc(components.Keys.Select, "Results"))
		}
		return components.Hints(
			components.WithDesc(components.Keys.Select, "Back to map"),
			components.Keys.Quit,
		)
	}

	switch s.visit.Lesson.Kind {
	case catalog.KindContent:
		return components.Hints(
			components.WithDesc(components.Keys.Select, "Mark as read"),
			components.WithDesc(components.Keys.Back, "Map"),
		)
	case catalog.KindCodeError:
		return components.Hints(
			components.Keys.Up,
			components.Keys.Toggle,
			components.WithDesc(components.Keys.Select, "Submit"),
			components.WithDesc(components.Keys.Back, "Map"),
		)
	default:
		return components.Hints(
			components.Keys.Up,
			components.WithDesc(components.Keys.Select, "Answer"),
			components.WithDesc(components.Keys.Back, "Map"),
		)
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(acknowledgeMsg); ok {
		res, err := s.sess.AcknowledgeContent(s.visit)
		s.settle(res, err)
		return s, nil
	}

	if s.result != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, components.Keys.Select) {
			return s, s.leave()
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.visit.Lesson.Kind {
	case catalog.KindContent:
		s.read, cmd = s.read.Update(msg)

	case catalog.KindQuestion:
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			res, err := s.sess.SubmitAnswer(s.visit, s.choice.ChosenIndex)
			s.settle(res, err)
		}

	case catalog.KindCodeError:
		s.lines, cmd = s.lines.Update(msg)
		if s.lines.Submitted {
			res, err := s.sess.SubmitLines(s.visit, s.lines.Selected())
			s.settle(res, err)
		}
	}
	return s, cmd
}

func (s *LessonScreen) settle(res *session.Result, err error) {
	if err != nil {
		logrus.Warnf("lesson %s: %v", s.visit.Lesson.ID, err)
		s.errMsg = err.Error()
		return
	}
	s.result = res
}

// leave returns to the map, or swaps in the results screen once the
// game is over or the path is finished.
func (s *LessonScreen) leave() tea.Cmd {
	if s.result.GameOver || s.result.PathComplete {
		results := summary.New(s.sess)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}
