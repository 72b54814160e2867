// Package transcript holds the append-only record of every interview
// exchange. Entries are immutable once appended and a session's sequence
// never shrinks; the final report is synthesized from this record alone.
package transcript

import "sync"

// Scores are the per-answer rubric dimensions, each 0-5.
type Scores struct {
	Clarity           int `json:"clarity"`
	Structure         int `json:"structure"`
	Examples          int `json:"examples"`
	TechnicalAccuracy int `json:"technical_accuracy"`
	Overall           int `json:"overall"`
}

// Entry is one question/answer exchange with its scores.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Scores   Scores `json:"scores"`
}

// Store keeps per-session transcripts. Safe for concurrent use across
// sessions; a single session is driven by one client at a time.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewStore creates an empty transcript store.
func NewStore() *Store {
	return &Store{entries: make(map[string][]Entry)}
}

// Append adds an entry to the session's transcript.
func (s *Store) Append(sessionID string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = append(s.entries[sessionID], e)
}

// Entries returns a copy of the session's transcript in append order.
func (s *Store) Entries(sessionID string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.entries[sessionID]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Len returns the number of entries recorded for the session.
func (s *Store) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[sessionID])
}

// Drop removes a session's transcript. Called after the session is
// retired and its report produced.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}
