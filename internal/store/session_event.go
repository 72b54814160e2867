package store

import (
	"context"
	"fmt"
	"time"
)

// Session event kinds.
const (
	SessionStarted = "started"
	SessionEnded   = "ended"
	SessionEvicted = "evicted"
)

// SessionEventData is the input for recording a session lifecycle event.
type SessionEventData struct {
	SessionID  string
	Kind       string
	Role       string
	Difficulty string
	Questions  int
	Duration   time.Duration
}

// SessionEvent is a recorded session lifecycle event.
type SessionEvent struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	Kind       string
	Role       string
	Difficulty string
	Questions  int
	DurationMs int64
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, session_id, kind, role, difficulty, questions, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Kind, data.Role, data.Difficulty,
		data.Questions, data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, sessionID string) ([]SessionEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp, session_id, kind, role, difficulty,
			questions, duration_ms
		 FROM session_events WHERE session_id = ? ORDER BY sequence`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var e SessionEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID,
			&e.Kind, &e.Role, &e.Difficulty, &e.Questions, &e.DurationMs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
