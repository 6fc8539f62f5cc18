package gamification

import "slices"

// DefaultMaxLives is the number of lives a session starts with.
const DefaultMaxLives = 3

// State is a snapshot of the game counters.
type State struct {
	Lives         int
	MaxLives      int
	Points        int
	Streak        int
	MaxStreak     int
	TotalAttempts int
	TotalCorrect  int
	// Achievements are kept in the order they were earned.
	Achievements []Achievement
}

// Engine owns the lives, points, streak and achievement counters of one
// session. All operations are total and keep the counters in range.
type Engine struct {
	maxLives int
	state    State
}

// NewEngine creates an engine with maxLives lives. Values below 1 fall back
// to DefaultMaxLives and larger values are capped at it.
func NewEngine(maxLives int) *Engine {
	if maxLives < 1 || maxLives > DefaultMaxLives {
		maxLives = DefaultMaxLives
	}
	e := &Engine{maxLives: maxLives}
	e.Reset()
	return e
}

// LoseLife removes one life, never going below zero.
func (e *Engine) LoseLife() {
	e.state.Lives = max(0, e.state.Lives-1)
}

// GainPoints adds n points. Callers only pass awards, which are never negative.
func (e *Engine) GainPoints(n int) {
	e.state.Points += n
}

// ResetStreak sets the current streak to zero. MaxStreak is kept.
func (e *Engine) ResetStreak() {
	e.state.Streak = 0
}

// IncrementStreak extends the streak and raises MaxStreak when passed.
func (e *Engine) IncrementStreak() {
	e.state.Streak++
	e.state.MaxStreak = max(e.state.MaxStreak, e.state.Streak)
}

// AddAttempt counts a graded attempt.
func (e *Engine) AddAttempt() {
	e.state.TotalAttempts++
}

// AddCorrect counts a correct graded attempt. Callers pair it with
// AddAttempt; the counters are independent of call order.
func (e *Engine) AddCorrect() {
	e.state.TotalCorrect++
}

// UnlockAchievement records a, returning true only the first time.
func (e *Engine) UnlockAchievement(a Achievement) bool {
	if e.HasAchievement(a) {
		return false
	}
	e.state.Achievements = append(e.state.Achievements, a)
	return true
}

// HasAchievement reports whether a has been unlocked.
func (e *Engine) HasAchievement(a Achievement) bool {
	return slices.Contains(e.state.Achievements, a)
}

// CanContinue reports whether the session still has lives.
func (e *Engine) CanContinue() bool {
	return e.state.Lives > 0
}

// Accuracy returns the correct percentage rounded half up, or 100 when
// nothing has been attempted yet.
func (e *Engine) Accuracy() int {
	return Accuracy(e.state.TotalCorrect, e.state.TotalAttempts)
}

// Accuracy computes round(100*correct/attempts) with halves rounded up.
func Accuracy(correct, attempts int) int {
	if attempts <= 0 {
		return 100
	}
	return (200*correct + attempts) / (2 * attempts)
}

// State returns a copy of the counters.
func (e *Engine) State() State {
	s := e.state
	s.Achievements = slices.Clone(e.state.Achievements)
	return s
}

// Reset restores the initial counters and clears achievements.
func (e *Engine) Reset() {
	e.state = State{
		Lives:    e.maxLives,
		MaxLives: e.maxLives,
	}
}
