package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// Session lifecycle actions.
const (
	ActionStart    = "start"
	ActionRestart  = "restart"
	ActionGameOver = "game_over"
	ActionComplete = "complete"
	ActionEnd      = "end"
)

// SessionEventData captures a session lifecycle transition and the counters
// at that moment.
type SessionEventData struct {
	SessionID string
	Action    string
	Points    int
	MaxStreak int
	Attempts  int
	Correct   int
	Lives     int
}

// SessionEvent is a stored session lifecycle row.
type SessionEvent struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// AttemptEventData captures one graded answer or content acknowledgement.
type AttemptEventData struct {
	SessionID string
	LessonID  string
	Kind      string
	Correct   bool
	Points    int
	Streak    int
}

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	SessionID   string
	Achievement string
}

// Stats aggregates the whole journal.
type Stats struct {
	Sessions     int
	Attempts     int
	Correct      int
	BestPoints   int
	BestStreak   int
	Achievements map[string]int
	// LessonsMissed counts incorrect attempts per lesson id.
	LessonsMissed map[string]int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// RecentSessions returns finished sessions, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// Stats aggregates every event in the journal.
	Stats(ctx context.Context) (Stats, error)
}
