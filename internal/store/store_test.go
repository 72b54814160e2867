package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"turn-decision", "answer-scoring", "turn-decision"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    120,
			Success:      true,
			RequestBody:  "req",
			ResponseBody: "resp",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10, Purpose: "answer-scoring"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("expected 1 filtered event, got %d", len(filtered))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "report",
		Success: false, ErrorMessage: "model provider unavailable",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.Success {
		t.Error("expected failed event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 2 {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "m1", Purpose: "report",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(usage))
	}
	if usage[0].Calls != 2 || usage[0].InputTokens != 200 || usage[0].OutputTokens != 80 {
		t.Errorf("unexpected aggregation: %+v", usage[0])
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "abc", Kind: SessionStarted, Role: "backend", Difficulty: "medium",
	})
	if err != nil {
		t.Fatalf("append started: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "abc", Kind: SessionEnded, Role: "backend", Difficulty: "medium",
		Questions: 6, Duration: 12 * time.Minute,
	})
	if err != nil {
		t.Fatalf("append ended: %v", err)
	}

	events, err := repo.QuerySessionEvents(ctx, "abc")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != SessionStarted || events[1].Kind != SessionEnded {
		t.Errorf("unexpected order: %q then %q", events[0].Kind, events[1].Kind)
	}
	if events[1].DurationMs != (12 * time.Minute).Milliseconds() {
		t.Errorf("duration not recorded: %d", events[1].DurationMs)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
