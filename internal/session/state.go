package session

import (
	"errors"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/scoring"
)

// Guard errors returned by session operations.
var (
	ErrUnknownLesson   = errors.New("session: unknown lesson")
	ErrLessonLocked    = errors.New("session: lesson is locked")
	ErrGameOver        = errors.New("session: game over")
	ErrAlreadyAnswered = errors.New("session: visit already answered")
	ErrWrongKind       = errors.New("session: operation does not match lesson kind")
	ErrNoSelection     = errors.New("session: no valid selection")
)

// Phase is the session lifecycle phase.
type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseGameOver Phase = "game-over"
)

// VisitState is the per-visit lesson state.
type VisitState string

const (
	// Graded lessons.
	VisitUnanswered VisitState = "unanswered"
	VisitAnswered   VisitState = "answered"

	// Content lessons.
	VisitIncomplete VisitState = "incomplete"
	VisitCompleted  VisitState = "completed"
)

// Visit is one opening of a lesson. A graded visit accepts exactly one
// answer; reopening the lesson starts a fresh visit.
type Visit struct {
	Lesson catalog.Lesson

	state  VisitState
	result *Result
}

func newVisit(l catalog.Lesson) *Visit {
	v := &Visit{Lesson: l, state: VisitUnanswered}
	if l.Kind == catalog.KindContent {
		v.state = VisitIncomplete
	}
	return v
}

// State returns the visit's current state.
func (v *Visit) State() VisitState { return v.state }

// Done reports whether the visit reached its terminal state.
func (v *Visit) Done() bool {
	return v.state == VisitAnswered || v.state == VisitCompleted
}

// Result returns the outcome of the visit, or nil while it is open.
func (v *Visit) Result() *Result { return v.result }

func (v *Visit) finish(r *Result) {
	if v.Lesson.Kind == catalog.KindContent {
		v.state = VisitCompleted
	} else {
		v.state = VisitAnswered
	}
	v.result = r
}

// Result describes everything one submission changed.
type Result struct {
	Outcome scoring.Outcome
	// Award is the points gained; zero on failure.
	Award int
	// Unlocked is the lesson opened by this success, if any.
	Unlocked string
	// StreakLost is set when a failure broke a running streak.
	StreakLost      bool
	NewAchievements []gamification.Achievement
	GameOver        bool
	// PathComplete is set when the final lesson of the path was passed.
	PathComplete bool
	// State is the counters after the submission.
	State gamification.State
}
