package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptEventsTable).
		Columns("sequence", "timestamp", "session_id", "lesson_id", "kind", "correct", "points", "streak").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.LessonID, data.Kind, data.Correct, data.Points, data.Streak).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(achievementEventsTable).
		Columns("sequence", "timestamp", "session_id", "achievement").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Achievement).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

// contentKind is the attempt kind for acknowledged reading lessons; those
// rows are journaled but are not graded attempts.
const contentKind = "content"

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	b := entsql.Dialect(dialect.SQLite)
	var st Stats

	sessions := b.Select(entsql.Count("*")).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.In("action", ActionStart, ActionRestart))
	if err := r.scanRow(ctx, sessions, &st.Sessions); err != nil {
		return Stats{}, fmt.Errorf("count sessions: %w", err)
	}

	attempts := b.Select(entsql.Count("*"), "COALESCE(SUM(correct), 0)").
		From(entsql.Table(attemptEventsTable)).
		Where(entsql.NEQ("kind", contentKind))
	if err := r.scanRow(ctx, attempts, &st.Attempts, &st.Correct); err != nil {
		return Stats{}, fmt.Errorf("count attempts: %w", err)
	}

	best := b.Select("COALESCE(MAX(points), 0)", "COALESCE(MAX(max_streak), 0)").
		From(entsql.Table(sessionEventsTable))
	if err := r.scanRow(ctx, best, &st.BestPoints, &st.BestStreak); err != nil {
		return Stats{}, fmt.Errorf("best session: %w", err)
	}

	var err error
	st.Achievements, err = r.countBy(ctx, b.Select("achievement", entsql.Count("*")).
		From(entsql.Table(achievementEventsTable)).
		GroupBy("achievement"))
	if err != nil {
		return Stats{}, fmt.Errorf("count achievements: %w", err)
	}

	st.LessonsMissed, err = r.countBy(ctx, b.Select("lesson_id", entsql.Count("*")).
		From(entsql.Table(attemptEventsTable)).
		Where(entsql.EQ("correct", false)).
		GroupBy("lesson_id"))
	if err != nil {
		return Stats{}, fmt.Errorf("count misses: %w", err)
	}

	return st, nil
}

// scanRow runs a single-row aggregate query into dest.
func (r *eventRepo) scanRow(ctx context.Context, sel *entsql.Selector, dest ...any) error {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return rows.Err()
	}
	return rows.Scan(dest...)
}

// countBy runs a "key, COUNT(*) ... GROUP BY key" query into a map.
func (r *eventRepo) countBy(ctx context.Context, sel *entsql.Selector) (map[string]int, error) {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}
