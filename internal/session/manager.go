// Package session owns interview lifecycles: creation, answer
// submission, termination, and idle eviction. The manager is the only
// writer of session state; everything model-facing runs with no locks
// held and is re-validated before its effects are committed.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/engine"
	"github.com/novexa/novexa/internal/questions"
	"github.com/novexa/novexa/internal/report"
	"github.com/novexa/novexa/internal/store"
	"github.com/novexa/novexa/internal/transcript"
)

const welcomeTemplate = "Hi %s! I'm Novexa, your AI interviewer today. I'm looking forward to getting to know you. Let's start with... "

// Config holds the manager's lifecycle knobs.
type Config struct {
	// IdleTTL is how long a session may sit idle before eviction.
	IdleTTL time.Duration

	// SweepInterval is how often the janitor scans for idle sessions.
	SweepInterval time.Duration
}

// DefaultConfig returns the standard lifecycle policy.
func DefaultConfig() Config {
	return Config{
		IdleTTL:       30 * time.Minute,
		SweepInterval: time.Minute,
	}
}

// ConfigFromEnv returns the default policy with NOVEXA_SESSION_TTL
// applied when set to a valid duration (e.g. "45m").
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("NOVEXA_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.IdleTTL = d
		}
	}
	return cfg
}

type session struct {
	id      string
	profile candidate.Profile
	source  *questions.Source

	startedAt  time.Time
	lastActive time.Time

	cursor         int
	questionsAsked int
	followUps      int
	maxFollowUps   int
	lastQuestion   string

	ended  bool
	report *report.Report
}

// Manager owns all live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	rng      *rand.Rand

	catalog     *questions.Catalog
	engine      *engine.Engine
	synthesizer *report.Synthesizer
	transcripts *transcript.Store
	events      store.EventRepo
	cfg         Config

	now  func() time.Time
	done chan struct{}
	wg   sync.WaitGroup
}

// NewManager creates a Manager and starts its idle-eviction janitor.
// Call Close to stop it.
func NewManager(catalog *questions.Catalog, eng *engine.Engine, synth *report.Synthesizer, events store.EventRepo, cfg Config) *Manager {
	m := &Manager{
		sessions:    make(map[string]*session),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		catalog:     catalog,
		engine:      eng,
		synthesizer: synth,
		transcripts: transcript.NewStore(),
		events:      events,
		cfg:         cfg,
		now:         time.Now,
		done:        make(chan struct{}),
	}

	if cfg.SweepInterval > 0 {
		m.wg.Add(1)
		go m.janitor()
	}
	return m
}

// Transcripts exposes the transcript store for read access.
func (m *Manager) Transcripts() *transcript.Store {
	return m.transcripts
}

// Create validates the profile, builds the seed list, and returns the new
// session id with the welcome line and first question.
func (m *Manager) Create(ctx context.Context, profile candidate.Profile) (string, string, error) {
	if err := profile.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	m.mu.Lock()
	source := questions.NewSource(m.catalog, profile, m.rng)
	first, err := source.Next(0)
	if err != nil {
		first = questions.GenericQuestion
	}

	var maxFollowUps int
	if role, ok := m.catalog.Lookup(profile.Role); ok {
		maxFollowUps = role.FollowUpRules.MaxFollowUps
	}

	id := uuid.NewString()
	now := m.now()
	m.sessions[id] = &session{
		id:             id,
		profile:        profile,
		source:         source,
		startedAt:      now,
		lastActive:     now,
		cursor:         0,
		questionsAsked: 1,
		maxFollowUps:   maxFollowUps,
		lastQuestion:   first,
	}
	m.mu.Unlock()

	m.logEvent(ctx, store.SessionEventData{
		SessionID:  id,
		Kind:       store.SessionStarted,
		Role:       profile.Role,
		Difficulty: string(profile.Difficulty),
	})

	welcome := fmt.Sprintf(welcomeTemplate, profile.Name) + first
	return id, welcome, nil
}

// Submit records an answer and returns the interviewer's next move. The
// model calls run without holding the session table lock; their effects
// are committed only if the session is still live afterwards.
func (m *Manager) Submit(ctx context.Context, id, answer string) (engine.Decision, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return engine.Decision{}, ErrSessionNotFound
	}
	if s.ended {
		m.mu.Unlock()
		return engine.Decision{}, ErrSessionEnded
	}
	s.lastActive = m.now()
	in := engine.Input{
		Profile:        s.profile,
		Entries:        m.transcripts.Entries(id),
		LastQuestion:   s.lastQuestion,
		Answer:         answer,
		Elapsed:        m.now().Sub(s.startedAt),
		QuestionsAsked: s.questionsAsked,
		FollowUps:      s.followUps,
		MaxFollowUps:   s.maxFollowUps,
		SeedCursor:     s.cursor,
		Source:         s.source,
	}
	m.mu.Unlock()

	decision, outcome, err := m.engine.Decide(ctx, in)
	if err != nil {
		return engine.Decision{}, fmt.Errorf("decide: %w", err)
	}

	m.mu.Lock()
	s, ok = m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return engine.Decision{}, ErrSessionNotFound
	}
	if s.ended {
		// The session was retired while the decision was in flight.
		// Nothing from this turn may be committed.
		m.mu.Unlock()
		return engine.Decision{}, ErrSessionEnded
	}

	m.transcripts.Append(id, outcome.Entry)
	switch decision.Action {
	case engine.ActionFollowUp:
		if !outcome.Confirmation {
			s.followUps++
		}
		s.lastQuestion = decision.Text
	case engine.ActionNextQuestion:
		s.cursor++
		s.questionsAsked++
		s.followUps = 0
		s.lastQuestion = decision.Text
	case engine.ActionEnd:
		s.ended = true
	}
	s.lastActive = m.now()
	m.mu.Unlock()

	return decision, nil
}

// End terminates the session and synthesizes its report. Ending an
// already-ended session returns the cached report; the first End after a
// terminal decision does the synthesis.
func (m *Manager) End(ctx context.Context, id string) (*report.Report, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.report != nil {
		r := s.report
		m.mu.Unlock()
		return r, nil
	}
	s.ended = true
	s.lastActive = m.now()
	profile := s.profile
	started := s.startedAt
	questionsAsked := s.questionsAsked
	entries := m.transcripts.Entries(id)
	m.mu.Unlock()

	r, err := m.synthesizer.Synthesize(ctx, profile, entries)
	if err != nil {
		return nil, fmt.Errorf("synthesize report: %w", err)
	}

	m.mu.Lock()
	if s, ok := m.sessions[id]; ok {
		if s.report == nil {
			s.report = r
		}
		r = s.report
	}
	m.mu.Unlock()

	m.logEvent(ctx, store.SessionEventData{
		SessionID:  id,
		Kind:       store.SessionEnded,
		Role:       profile.Role,
		Difficulty: string(profile.Difficulty),
		Questions:  questionsAsked,
		Duration:   m.now().Sub(started),
	})

	return r, nil
}

// Close stops the janitor. Live sessions are left in place.
func (m *Manager) Close() {
	close(m.done)
	m.wg.Wait()
}

func (m *Manager) janitor() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep evicts sessions idle beyond the TTL.
func (m *Manager) sweep() {
	now := m.now()

	m.mu.Lock()
	var evicted []*session
	for id, s := range m.sessions {
		if now.Sub(s.lastActive) > m.cfg.IdleTTL {
			delete(m.sessions, id)
			m.transcripts.Drop(id)
			evicted = append(evicted, s)
		}
	}
	m.mu.Unlock()

	for _, s := range evicted {
		m.logEvent(context.Background(), store.SessionEventData{
			SessionID:  s.id,
			Kind:       store.SessionEvicted,
			Role:       s.profile.Role,
			Difficulty: string(s.profile.Difficulty),
			Questions:  s.questionsAsked,
			Duration:   now.Sub(s.startedAt),
		})
	}
}

// logEvent records a lifecycle event. The event log is observability,
// not state; failures are ignored.
func (m *Manager) logEvent(ctx context.Context, data store.SessionEventData) {
	if m.events == nil {
		return
	}
	_ = m.events.AppendSessionEvent(ctx, data)
}
