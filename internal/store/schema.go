package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	sessionEventsTable     = "session_events"
	attemptEventsTable     = "attempt_events"
	achievementEventsTable = "achievement_events"
)

var journalTables = []string{sessionEventsTable, attemptEventsTable, achievementEventsTable}

// Every journal row carries the shared sequence and a unix-millisecond
// timestamp alongside its own columns.
var journalDDL = []string{
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		max_streak INTEGER NOT NULL DEFAULT 0,
		attempts INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		lives INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS attempt_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		lesson_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		correct BOOLEAN NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		streak INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS attempt_events_lesson_id ON attempt_events (lesson_id)`,
	`CREATE TABLE IF NOT EXISTS achievement_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		achievement TEXT NOT NULL
	)`,
}

// migrate creates the journal tables if they don't exist.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range journalDDL {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("create journal schema: %w", err)
		}
	}
	return nil
}
