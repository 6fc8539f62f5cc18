package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/feedback"
	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/progress"
	"github.com/shinypath/shinypath/internal/store"
)

// mockJournal records appended events in memory.
type mockJournal struct {
	sessions     []store.SessionEventData
	attempts     []store.AttemptEventData
	achievements []store.AchievementEventData
	failWith     error
}

func (m *mockJournal) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.sessions = append(m.sessions, d)
	return m.failWith
}

func (m *mockJournal) AppendAttemptEvent(_ context.Context, d store.AttemptEventData) error {
	m.attempts = append(m.attempts, d)
	return m.failWith
}

func (m *mockJournal) AppendAchievementEvent(_ context.Context, d store.AchievementEventData) error {
	m.achievements = append(m.achievements, d)
	return m.failWith
}

func (m *mockJournal) RecentSessions(context.Context, store.QueryOpts) ([]store.SessionEvent, error) {
	return nil, nil
}

func (m *mockJournal) Stats(context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}

func (m *mockJournal) actions() []string {
	var out []string
	for _, e := range m.sessions {
		out = append(out, e.Action)
	}
	return out
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return New(catalog.Default(), opts...)
}

// pass opens the lesson and answers it correctly.
func pass(t *testing.T, s *Session, id string) *Result {
	t.Helper()
	v, err := s.Open(id)
	if err != nil {
		t.Fatalf("open %s: %v", id, err)
	}

	var res *Result
	switch v.Lesson.Kind {
	case catalog.KindContent:
		res, err = s.AcknowledgeContent(v)
	case catalog.KindQuestion:
		res, err = s.SubmitAnswer(v, v.Lesson.Question.CorrectIndex)
	case catalog.KindCodeError:
		res, err = s.SubmitLines(v, v.Lesson.CodeError.ErrorLines)
	}
	if err != nil {
		t.Fatalf("answer %s: %v", id, err)
	}
	if !res.Outcome.Correct {
		t.Fatalf("answer %s graded incorrect", id)
	}
	return res
}

// miss opens a question lesson and picks a wrong answer.
func miss(t *testing.T, s *Session, id string) *Result {
	t.Helper()
	v, err := s.Open(id)
	if err != nil {
		t.Fatalf("open %s: %v", id, err)
	}
	wrong := (v.Lesson.Question.CorrectIndex + 1) % len(v.Lesson.Question.Answers)
	res, err := s.SubmitAnswer(v, wrong)
	if err != nil {
		t.Fatalf("answer %s: %v", id, err)
	}
	return res
}

func TestNew_InitialState(t *testing.T) {
	s := newTestSession(t)

	if s.Phase() != PhaseActive {
		t.Errorf("phase = %q, want active", s.Phase())
	}
	if s.ID() == "" {
		t.Error("expected session id")
	}
	if st := s.Engine().State(); st.Lives != 3 || st.Points != 0 {
		t.Errorf("state = %+v", st)
	}
	if got := s.Tracker().Status("ilha-1"); got != progress.StatusUnlocked {
		t.Errorf("ilha-1 = %q, want unlocked", got)
	}
}

func TestOpen_Guards(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.Open("nonexistent"); !errors.Is(err, ErrUnknownLesson) {
		t.Errorf("unknown lesson err = %v", err)
	}
	if _, err := s.Open("ilha-2"); !errors.Is(err, ErrLessonLocked) {
		t.Errorf("locked lesson err = %v", err)
	}

	v, err := s.Open("ilha-1")
	if err != nil {
		t.Fatalf("open ilha-1: %v", err)
	}
	if v.State() != VisitIncomplete {
		t.Errorf("content visit state = %q, want incomplete", v.State())
	}
}

func TestAcknowledgeContent(t *testing.T) {
	rec := &feedback.Recorder{}
	s := newTestSession(t, WithFeedback(rec))

	res := pass(t, s, "ilha-1")

	if res.Award != 5 || res.Unlocked != "ilha-2" {
		t.Errorf("result = %+v", res)
	}
	st := s.Engine().State()
	if st.Points != 5 || st.Streak != 1 {
		t.Errorf("points/streak = %d/%d, want 5/1", st.Points, st.Streak)
	}
	if st.TotalAttempts != 0 {
		t.Errorf("content counted as attempt: %d", st.TotalAttempts)
	}
	if s.Tracker().Status("ilha-1") != progress.StatusCompleted {
		t.Error("ilha-1 not completed")
	}
	if len(rec.Signals) != 1 || rec.Signals[0] != feedback.SignalSuccess {
		t.Errorf("signals = %v, want [success]", rec.Signals)
	}
}

func TestScoringUsesStreakBeforeAnswer(t *testing.T) {
	s := newTestSession(t)

	pass(t, s, "ilha-1") // +5, streak 1
	q := pass(t, s, "ilha-2")
	if q.Award != 12 {
		t.Errorf("question award = %d, want 12", q.Award)
	}
	ce := pass(t, s, "ilha-3")
	if ce.Award != 21 {
		t.Errorf("code-error award = %d, want 21", ce.Award)
	}
	if got := s.Engine().State().Points; got != 38 {
		t.Errorf("points = %d, want 38", got)
	}
}

func TestStreakMasterOnThirdSuccess(t *testing.T) {
	s := newTestSession(t)

	pass(t, s, "ilha-1")
	pass(t, s, "ilha-2")
	res := pass(t, s, "ilha-3")

	if len(res.NewAchievements) != 1 || res.NewAchievements[0] != gamification.StreakMaster {
		t.Errorf("new achievements = %v, want [Streak Master]", res.NewAchievements)
	}

	res = pass(t, s, "ilha-4")
	if len(res.NewAchievements) != 0 {
		t.Errorf("content should not report achievements, got %v", res.NewAchievements)
	}
}

func TestSharpShooterOnFifthCorrect(t *testing.T) {
	s := newTestSession(t)

	graded := 0
	for _, n := range s.Tracker().Nodes() {
		pass(t, s, n.ID)
		if n.Kind.Graded() {
			graded++
		}
		if graded == 4 && s.Engine().HasAchievement(gamification.SharpShooter) {
			t.Fatal("sharp shooter unlocked before fifth correct answer")
		}
		if graded == 5 {
			break
		}
	}

	if !s.Engine().HasAchievement(gamification.SharpShooter) {
		t.Error("sharp shooter not unlocked at fifth correct answer")
	}
	if s.Engine().HasAchievement(gamification.CodeInspector) {
		t.Error("code inspector should need ten correct answers on a code-error lesson")
	}
}

func TestFailure(t *testing.T) {
	rec := &feedback.Recorder{}
	s := newTestSession(t, WithFeedback(rec))
	pass(t, s, "ilha-1")

	res := miss(t, s, "ilha-2")

	if res.Outcome.Correct || res.Award != 0 {
		t.Errorf("result = %+v", res)
	}
	if !res.StreakLost {
		t.Error("expected StreakLost")
	}
	st := s.Engine().State()
	if st.Lives != 2 || st.Streak != 0 || st.MaxStreak != 1 || st.TotalAttempts != 1 || st.TotalCorrect != 0 {
		t.Errorf("state = %+v", st)
	}
	if s.Tracker().Status("ilha-2") != progress.StatusUnlocked {
		t.Error("failed lesson should stay unlocked")
	}
	if s.Tracker().Status("ilha-3") != progress.StatusLocked {
		t.Error("failure must not unlock the next lesson")
	}
	if rec.Signals[len(rec.Signals)-1] != feedback.SignalFailure {
		t.Errorf("last signal = %q, want failure", rec.Signals[len(rec.Signals)-1])
	}
}

func TestGameOverAndRestart(t *testing.T) {
	j := &mockJournal{}
	s := newTestSession(t, WithJournal(j))
	pass(t, s, "ilha-1")
	firstID := s.ID()

	miss(t, s, "ilha-2")
	miss(t, s, "ilha-2")
	res := miss(t, s, "ilha-2")

	if !res.GameOver || s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, phase = %q", s.Phase())
	}
	if s.Engine().CanContinue() {
		t.Error("CanContinue should be false")
	}
	if _, err := s.Open("ilha-1"); !errors.Is(err, ErrGameOver) {
		t.Errorf("open after game over err = %v", err)
	}

	s.Restart()

	if s.Phase() != PhaseActive {
		t.Errorf("phase after restart = %q", s.Phase())
	}
	if s.ID() == firstID {
		t.Error("restart should issue a new session id")
	}
	st := s.Engine().State()
	if st.Lives != 3 || st.Points != 0 || st.TotalAttempts != 0 || st.MaxStreak != 0 {
		t.Errorf("state after restart = %+v", st)
	}
	if s.Tracker().Status("ilha-1") != progress.StatusUnlocked || s.Tracker().Status("ilha-2") != progress.StatusLocked {
		t.Error("tracker not reset")
	}

	want := []string{store.ActionStart, store.ActionGameOver, store.ActionRestart}
	got := j.actions()
	if len(got) != len(want) {
		t.Fatalf("journal actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if j.sessions[1].Points != 5 || j.sessions[1].Lives != 0 {
		t.Errorf("game over event = %+v", j.sessions[1])
	}
}

func TestSubmitAfterGameOver(t *testing.T) {
	s := newTestSession(t, WithMaxLives(1))
	pass(t, s, "ilha-1")

	pending, err := s.Open("ilha-1")
	if err != nil {
		t.Fatal(err)
	}
	miss(t, s, "ilha-2")

	if _, err := s.AcknowledgeContent(pending); !errors.Is(err, ErrGameOver) {
		t.Errorf("submit after game over err = %v", err)
	}
	if got := s.Engine().State().Points; got != 5 {
		t.Errorf("points changed after game over: %d", got)
	}
}

func TestVisitGuards(t *testing.T) {
	s := newTestSession(t)
	pass(t, s, "ilha-1")

	v, _ := s.Open("ilha-2")
	if _, err := s.SubmitLines(v, []int{1}); !errors.Is(err, ErrWrongKind) {
		t.Errorf("wrong kind err = %v", err)
	}
	if _, err := s.AcknowledgeContent(v); !errors.Is(err, ErrWrongKind) {
		t.Errorf("wrong kind err = %v", err)
	}
	if _, err := s.SubmitAnswer(v, -1); !errors.Is(err, ErrNoSelection) {
		t.Errorf("no selection err = %v", err)
	}
	if _, err := s.SubmitAnswer(v, 99); !errors.Is(err, ErrNoSelection) {
		t.Errorf("out of range err = %v", err)
	}

	if _, err := s.SubmitAnswer(v, v.Lesson.Question.CorrectIndex); err != nil {
		t.Fatal(err)
	}
	if v.State() != VisitAnswered || v.Result() == nil {
		t.Errorf("visit state = %q", v.State())
	}
	if _, err := s.SubmitAnswer(v, 0); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second answer err = %v", err)
	}

	again, err := s.Open("ilha-2")
	if err != nil {
		t.Fatal(err)
	}
	if again.State() != VisitUnanswered {
		t.Errorf("reopened visit state = %q, want unanswered", again.State())
	}
}

func TestSubmitLines(t *testing.T) {
	s := newTestSession(t)
	pass(t, s, "ilha-1")
	pass(t, s, "ilha-2")

	v, _ := s.Open("ilha-3")
	if _, err := s.SubmitLines(v, nil); !errors.Is(err, ErrNoSelection) {
		t.Errorf("empty selection err = %v", err)
	}

	res, err := s.SubmitLines(v, []int{2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome.Correct {
		t.Error("subset of error lines should be incorrect")
	}
	if s.Engine().State().Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Engine().State().Lives)
	}
}

func TestCrossSectionAndPathComplete(t *testing.T) {
	j := &mockJournal{}
	s := newTestSession(t, WithJournal(j))

	var last *Result
	for _, n := range s.Tracker().Nodes() {
		last = pass(t, s, n.ID)
		if n.ID == "ilha-7" && last.Unlocked != "funcao-1" {
			t.Errorf("ilha-7 unlocked %q, want funcao-1", last.Unlocked)
		}
	}

	if !last.PathComplete || last.Unlocked != "" {
		t.Errorf("final result = %+v", last)
	}
	if !s.Tracker().IsComplete() {
		t.Error("tracker should be complete")
	}
	if s.Tracker().CurrentSection() != catalog.SectionFunctions {
		t.Errorf("current section = %q", s.Tracker().CurrentSection())
	}
	if got := j.actions(); got[len(got)-1] != store.ActionComplete {
		t.Errorf("last journal action = %q, want complete", got[len(got)-1])
	}
	if len(j.attempts) != 13 {
		t.Errorf("journaled %d attempts, want 13", len(j.attempts))
	}

	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := j.actions(); got[len(got)-1] != store.ActionComplete {
		t.Error("close after completion should not journal again")
	}
}

func TestGameOverAfterPathCompleteJournalsOnce(t *testing.T) {
	j := &mockJournal{}
	s := newTestSession(t, WithJournal(j), WithMaxLives(1))
	for _, n := range s.Tracker().Nodes() {
		pass(t, s, n.ID)
	}

	res := miss(t, s, "ilha-2")
	if !res.GameOver || s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over on replay, phase = %q", s.Phase())
	}

	want := []string{store.ActionStart, store.ActionComplete}
	got := j.actions()
	if len(got) != len(want) {
		t.Fatalf("journal actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClose(t *testing.T) {
	j := &mockJournal{}
	s := newTestSession(t, WithJournal(j))
	pass(t, s, "ilha-1")

	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{store.ActionStart, store.ActionEnd}
	got := j.actions()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("journal actions = %v, want %v", got, want)
	}
}

func TestJournalFailureDoesNotAffectState(t *testing.T) {
	j := &mockJournal{failWith: errors.New("disk full")}
	s := newTestSession(t, WithJournal(j))

	res := pass(t, s, "ilha-1")
	if res.Award != 5 || s.Engine().State().Points != 5 {
		t.Errorf("journal failure changed outcome: %+v", res)
	}
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := newTestSession(t, WithClock(clock))

	pass(t, s, "ilha-1")
	pass(t, s, "ilha-2")
	miss(t, s, "ilha-2")
	now = now.Add(90 * time.Second)

	sum := BuildSummary(s)
	if sum.Duration != 90*time.Second {
		t.Errorf("duration = %v", sum.Duration)
	}
	if sum.Points != 17 || sum.MaxStreak != 2 || sum.Accuracy != 50 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Completed != 2 || sum.Total != 13 {
		t.Errorf("completed = %d/%d", sum.Completed, sum.Total)
	}
}
