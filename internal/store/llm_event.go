package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionEvents(ctx context.Context, sessionID string) ([]SessionEvent, error)
}

// LLMRequestEventData is the input for recording a model call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded model call.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts limits event queries.
type QueryOpts struct {
	Limit   int
	Purpose string
}

// PurposeUsage aggregates token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// eventRepo implements EventRepo over raw SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(sequence, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

const llmEventColumns = `id, sequence, timestamp, provider, model, purpose,
	input_tokens, output_tokens, latency_ms, success, error_message,
	request_body, response_body`

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + llmEventColumns + ` FROM llm_events`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY sequence DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+llmEventColumns+` FROM llm_events WHERE id = ?`, id)
	e, err := scanLLMEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(s scanner) (*LLMEvent, error) {
	var e LLMEvent
	err := s.Scan(
		&e.ID, &e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
			CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		 FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
