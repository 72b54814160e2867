package questions

import (
	"errors"
	"math/rand"

	"github.com/novexa/novexa/internal/candidate"
)

// ErrExhausted reports that a seed list has no question at the requested
// position. Callers fall back to generation; it never reaches the candidate.
var ErrExhausted = errors.New("seed questions exhausted")

const (
	maxSeeds        = 3
	maxSeedAttempts = 10
)

// Source is a per-session list of seed questions, fixed at session start.
// Advancement is the caller's cursor; the list itself never changes.
type Source struct {
	seeds []string
}

// NewSource builds the seed list for one session: a first question plus
// up to two more distinct picks, bounded by a fixed number of draw
// attempts so small pools cannot loop forever.
func NewSource(catalog *Catalog, profile candidate.Profile, rng *rand.Rand) *Source {
	seeds := []string{catalog.Seed(profile, rng)}
	for attempts := 0; len(seeds) < maxSeeds && attempts < maxSeedAttempts; attempts++ {
		q := catalog.Seed(profile, rng)
		if !contains(seeds, q) {
			seeds = append(seeds, q)
		}
	}
	return &Source{seeds: seeds}
}

// NewSourceFromSeeds builds a Source from a fixed seed list.
func NewSourceFromSeeds(seeds []string) *Source {
	out := make([]string, len(seeds))
	copy(out, seeds)
	return &Source{seeds: out}
}

// Next returns the seed at the cursor position, or ErrExhausted when the
// cursor has moved past the end of the list.
func (s *Source) Next(cursor int) (string, error) {
	if cursor < 0 || cursor >= len(s.seeds) {
		return "", ErrExhausted
	}
	return s.seeds[cursor], nil
}

// Len returns the number of seeds in the list.
func (s *Source) Len() int {
	return len(s.seeds)
}

// Seeds returns a copy of the seed list.
func (s *Source) Seeds() []string {
	out := make([]string, len(s.seeds))
	copy(out, s.seeds)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
