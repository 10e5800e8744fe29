package check

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// CheckRegistry holds the checks available to an executor.
type CheckRegistry struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// NewRegistry creates an empty registry.
func NewRegistry() *CheckRegistry {
	return &CheckRegistry{
		checks: make(map[string]Check),
	}
}

// Register adds a check. IDs must be unique.
func (r *CheckRegistry) Register(check Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := check.ID()
	if id == "" {
		return errors.New("check ID cannot be empty")
	}

	if _, exists := r.checks[id]; exists {
		return fmt.Errorf("check with ID %q already registered", id)
	}

	r.checks[id] = check

	return nil
}

// MustRegister adds a check and panics if registration fails.
func (r *CheckRegistry) MustRegister(check Check) {
	if err := r.Register(check); err != nil {
		panic(fmt.Sprintf("registering check: %v", err))
	}
}

// Get returns the check with the given ID.
func (r *CheckRegistry) Get(id string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checks[id]

	return c, ok
}

// ListAll returns all checks sorted by ID.
func (r *CheckRegistry) ListAll() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Check, 0, len(r.checks))
	for _, c := range r.checks {
		result = append(result, c)
	}

	slices.SortFunc(result, func(a Check, b Check) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return result
}

// ListByGroup returns the checks of a group sorted by ID.
func (r *CheckRegistry) ListByGroup(group CheckGroup) []Check {
	return slices.DeleteFunc(r.ListAll(), func(c Check) bool {
		return c.Group() != group
	})
}

// ListByPattern returns the checks matching pattern sorted by ID.
// An empty group matches every group.
func (r *CheckRegistry) ListByPattern(pattern string, group CheckGroup) ([]Check, error) {
	result := make([]Check, 0)

	for _, c := range r.ListAll() {
		if group != "" && c.Group() != group {
			continue
		}

		matched, err := matchesPattern(c, pattern)
		if err != nil {
			return nil, err
		}

		if matched {
			result = append(result, c)
		}
	}

	return result, nil
}

// ListByPatterns returns the checks in group matching any of patterns, sorted
// by ID. A check matched by several patterns is returned once.
func (r *CheckRegistry) ListByPatterns(patterns []string, group CheckGroup) ([]Check, error) {
	result := make([]Check, 0)

	for _, c := range r.ListAll() {
		if group != "" && c.Group() != group {
			continue
		}

		selected := false

		for _, pattern := range patterns {
			matched, err := matchesPattern(c, pattern)
			if err != nil {
				return nil, err
			}

			selected = selected || matched
		}

		if selected {
			result = append(result, c)
		}
	}

	return result, nil
}
