package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/feedback"
	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/progress"
	"github.com/shinypath/shinypath/internal/scoring"
	"github.com/shinypath/shinypath/internal/store"
)

// Session owns the progression and game state of one run along the path.
// It is not safe for concurrent use; the TUI update loop serializes calls.
type Session struct {
	id      string
	cat     *catalog.Catalog
	tracker *progress.Tracker
	engine  *gamification.Engine
	phase   Phase

	sink    feedback.Sink
	journal store.EventRepo
	now     func() time.Time

	startedAt time.Time
	// ended is set once a terminal session event has been journaled.
	ended bool
}

// Option configures a Session.
type Option func(*Session)

// WithFeedback sets the sink that receives success/failure cues.
func WithFeedback(sink feedback.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithJournal records session events in repo.
func WithJournal(repo store.EventRepo) Option {
	return func(s *Session) { s.journal = repo }
}

// WithMaxLives sets the number of lives per run.
func WithMaxLives(n int) Option {
	return func(s *Session) { s.engine = gamification.NewEngine(n) }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session over cat.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat:     cat,
		tracker: progress.NewTracker(cat),
		engine:  gamification.NewEngine(gamification.DefaultMaxLives),
		sink:    feedback.Nop{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.begin(store.ActionStart)
	return s
}

func (s *Session) begin(action string) {
	s.id = uuid.NewString()
	s.phase = PhaseActive
	s.startedAt = s.now()
	s.ended = false
	s.journalSession(action)
	logrus.WithField("session", s.id).Infof("session %s", action)
}

// ID returns the identifier of the current run. It changes on Restart.
func (s *Session) ID() string { return s.id }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Tracker returns the progression tracker.
func (s *Session) Tracker() *progress.Tracker { return s.tracker }

// Engine returns the gamification engine.
func (s *Session) Engine() *gamification.Engine { return s.engine }

// Catalog returns the lesson catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Elapsed returns the time since the current run started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.startedAt) }

// Open starts a visit to a lesson that is unlocked or completed.
func (s *Session) Open(lessonID string) (*Visit, error) {
	if s.phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	l, ok := s.cat.Lesson(lessonID)
	if !ok {
		return nil, ErrUnknownLesson
	}
	if s.tracker.Status(lessonID) == progress.StatusLocked {
		return nil, ErrLessonLocked
	}
	return newVisit(l), nil
}

// AcknowledgeContent completes a reading lesson. It awards points and
// extends the streak but is not counted as an attempt.
func (s *Session) AcknowledgeContent(v *Visit) (*Result, error) {
	if err := s.check(v, catalog.KindContent); err != nil {
		return nil, err
	}

	res := &Result{
		Outcome: scoring.Outcome{Correct: true, Kind: catalog.KindContent},
		Award:   scoring.Award(catalog.KindContent, s.engine.State().Streak),
	}
	s.engine.GainPoints(res.Award)
	s.engine.IncrementStreak()
	s.advance(v.Lesson.ID, res)
	s.sink.Success()

	return s.finish(v, res), nil
}

// SubmitAnswer grades a multiple-choice answer.
func (s *Session) SubmitAnswer(v *Visit, index int) (*Result, error) {
	if err := s.check(v, catalog.KindQuestion); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.Lesson.Question.Answers) {
		return nil, ErrNoSelection
	}
	return s.grade(v, scoring.GradeQuestion(*v.Lesson.Question, index)), nil
}

// SubmitLines grades a set of 1-based line numbers flagged as errors.
func (s *Session) SubmitLines(v *Visit, lines []int) (*Result, error) {
	if err := s.check(v, catalog.KindCodeError); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoSelection
	}
	return s.grade(v, scoring.GradeCodeError(*v.Lesson.CodeError, lines)), nil
}

func (s *Session) check(v *Visit, kind catalog.Kind) error {
	switch {
	case s.phase == PhaseGameOver:
		return ErrGameOver
	case v.Lesson.Kind != kind:
		return ErrWrongKind
	case v.Done():
		return ErrAlreadyAnswered
	}
	return nil
}

// grade applies the success or failure sequence for a graded answer.
func (s *Session) grade(v *Visit, correct bool) *Result {
	kind := v.Lesson.Kind
	streakBefore := s.engine.State().Streak

	s.engine.AddAttempt()
	outcome, award := scoring.Evaluate(kind, correct, streakBefore)
	res := &Result{Outcome: outcome, Award: award}

	if correct {
		s.engine.AddCorrect()
		s.engine.IncrementStreak()
		s.engine.GainPoints(award)
		s.advance(v.Lesson.ID, res)

		for _, a := range scoring.Achievements(kind, s.engine.State()) {
			if s.engine.UnlockAchievement(a) {
				res.NewAchievements = append(res.NewAchievements, a)
			}
		}
		s.sink.Success()
	} else {
		s.engine.LoseLife()
		s.engine.ResetStreak()
		res.StreakLost = streakBefore > 0
		s.sink.Failure()

		if !s.engine.CanContinue() {
			s.phase = PhaseGameOver
			res.GameOver = true
		}
	}

	return s.finish(v, res)
}

// advance completes the lesson and opens the next one.
func (s *Session) advance(lessonID string, res *Result) {
	s.tracker.CompleteNode(lessonID)
	res.Unlocked = s.tracker.UnlockNext(lessonID)
	res.PathComplete = s.cat.IsLastLesson(lessonID)
}

func (s *Session) finish(v *Visit, res *Result) *Result {
	res.State = s.engine.State()
	v.finish(res)

	s.journalAttempt(v.Lesson, res)
	for _, a := range res.NewAchievements {
		s.journalAchievement(a)
	}

	log := logrus.WithFields(logrus.Fields{
		"session": s.id,
		"lesson":  v.Lesson.ID,
		"correct": res.Outcome.Correct,
		"points":  res.State.Points,
		"lives":   res.State.Lives,
	})
	log.Debug("lesson answered")

	switch {
	case res.GameOver && !s.ended:
		log.Info("game over")
		s.endWith(store.ActionGameOver)
	case s.tracker.IsComplete() && !s.ended:
		log.Info("path complete")
		s.endWith(store.ActionComplete)
	}
	return res
}

// Restart discards all progress and game state and starts a new run.
func (s *Session) Restart() {
	if !s.ended {
		s.endWith(store.ActionEnd)
	}
	s.tracker.Reset()
	s.engine.Reset()
	s.begin(store.ActionRestart)
}

// Close records the end of the run unless it already ended.
func (s *Session) Close(ctx context.Context) error {
	if s.ended || s.journal == nil {
		s.ended = true
		return nil
	}
	s.ended = true
	return s.journal.AppendSessionEvent(ctx, s.sessionEvent(store.ActionEnd))
}

func (s *Session) endWith(action string) {
	s.ended = true
	s.journalSession(action)
}

func (s *Session) sessionEvent(action string) store.SessionEventData {
	st := s.engine.State()
	return store.SessionEventData{
		SessionID: s.id,
		Action:    action,
		Points:    st.Points,
		MaxStreak: st.MaxStreak,
		Attempts:  st.TotalAttempts,
		Correct:   st.TotalCorrect,
		Lives:     st.Lives,
	}
}

// Journal writes never affect game state; failures are only logged.

func (s *Session) journalSession(action string) {
	if s.journal == nil {
		return
	}
	if err := s.journal.AppendSessionEvent(context.Background(), s.sessionEvent(action)); err != nil {
		logrus.WithError(err).Warn("journal session event")
	}
}

func (s *Session) journalAttempt(l catalog.Lesson, res *Result) {
	if s.journal == nil {
		return
	}
	err := s.journal.AppendAttemptEvent(context.Background(), store.AttemptEventData{
		SessionID: s.id,
		LessonID:  l.ID,
		Kind:      string(l.Kind),
		Correct:   res.Outcome.Correct,
		Points:    res.Award,
		Streak:    res.State.Streak,
	})
	if err != nil {
		logrus.WithError(err).Warn("journal attempt event")
	}
}

func (s *Session) journalAchievement(a gamification.Achievement) {
	if s.journal == nil {
		return
	}
	err := s.journal.AppendAchievementEvent(context.Background(), store.AchievementEventData{
		SessionID:   s.id,
		Achievement: string(a),
	})
	if err != nil {
		logrus.WithError(err).Warn("journal achievement event")
	}
}
