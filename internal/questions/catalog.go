// Package questions serves interview questions: curated role catalogs
// embedded at build time, per-session seed lists drawn from them, and an
// LLM generator that takes over when the catalog runs dry.
package questions

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/novexa/novexa/internal/candidate"
)

//go:embed roles/*.yaml
var rolesFS embed.FS

// GenericQuestion is the last-resort seed when a catalog has nothing
// usable for the requested role, branch, and difficulty.
const GenericQuestion = "Tell me about your background and why you're interested in this role."

// Role is one role catalog: optional branch-specific pools plus
// role-level technical and behavioral pools.
type Role struct {
	Name          string              `yaml:"name"`
	Branches      map[string]Branch   `yaml:"branches"`
	Technical     map[string][]string `yaml:"technical"`
	Behavioral    []string            `yaml:"behavioral"`
	FollowUpRules FollowUpRules       `yaml:"follow_up_rules"`
}

// Branch holds the pools for one branch of a role (e.g. engineer/software).
type Branch struct {
	Technical  map[string][]string `yaml:"technical"`
	Behavioral []string            `yaml:"behavioral"`
}

// FollowUpRules carries per-role overrides of the interview policy.
type FollowUpRules struct {
	MaxFollowUps int `yaml:"max_followups"`
}

// Catalog is the set of role catalogs loaded from the embedded YAML files.
type Catalog struct {
	roles map[string]Role
}

// LoadCatalog parses the embedded role files. It fails only on malformed
// YAML, which would be a packaging bug.
func LoadCatalog() (*Catalog, error) {
	return loadCatalogFS(rolesFS, "roles")
}

func loadCatalogFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read role catalogs: %w", err)
	}

	c := &Catalog{roles: make(map[string]Role, len(entries))}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read role catalog %s: %w", e.Name(), err)
		}
		var role Role
		if err := yaml.Unmarshal(raw, &role); err != nil {
			return nil, fmt.Errorf("parse role catalog %s: %w", e.Name(), err)
		}
		name := strings.ToLower(role.Name)
		if name == "" {
			name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		c.roles[name] = role
	}
	return c, nil
}

// Roles lists the known role names, sorted.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.roles))
	for name := range c.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a role catalog by name, case-insensitive.
func (c *Catalog) Lookup(role string) (Role, bool) {
	r, ok := c.roles[strings.ToLower(strings.TrimSpace(role))]
	return r, ok
}

// Seed picks one seed question for the profile. Branch-specific technical
// pools win, then branch behavioral, then role-level technical, then
// role-level behavioral, then the generic prompt. An unknown role goes
// straight to the generic prompt.
func (c *Catalog) Seed(profile candidate.Profile, rng *rand.Rand) string {
	role, ok := c.Lookup(profile.Role)
	if !ok {
		return GenericQuestion
	}

	difficulty := string(profile.Difficulty)

	if branch, ok := role.Branches[strings.ToLower(profile.Branch)]; ok && profile.Branch != "" {
		if q := pickFrom(branch.Technical[difficulty], rng); q != "" {
			return q
		}
		if q := pickFrom(branch.Behavioral, rng); q != "" {
			return q
		}
	}

	if q := pickFrom(role.Technical[difficulty], rng); q != "" {
		return q
	}
	if q := pickFrom(role.Behavioral, rng); q != "" {
		return q
	}
	return GenericQuestion
}

func pickFrom(pool []string, rng *rand.Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}
