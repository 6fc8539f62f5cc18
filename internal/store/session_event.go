package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "action", "points", "max_streak", "attempts", "correct", "lives").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.Points, data.MaxStreak, data.Attempts, data.Correct, data.Lives).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("sequence", "timestamp", "session_id", "action", "points", "max_streak", "attempts", "correct", "lives").
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.In("action", ActionGameOver, ActionComplete, ActionEnd)).
		OrderBy(entsql.Desc("sequence"))

	if opts.After > 0 {
		sel = sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var (
			e  SessionEvent
			ms int64
		)
		if err := rows.Scan(&e.Sequence, &ms, &e.SessionID, &e.Action, &e.Points, &e.MaxStreak, &e.Attempts, &e.Correct, &e.Lives); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ms)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return events, nil
}
