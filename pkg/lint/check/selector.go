package check

import (
	"errors"
	"fmt"
	"path"
)

// matchesPattern returns true if the check matches the selector pattern
// Pattern can be:
//   - Wildcard: "*" matches all checks
//   - Group shortcut: "platform", "application"
//   - Exact ID: "application.saphana.compatibility"
//   - Glob pattern: "application.*", "*saphana*"
func matchesPattern(check Check, pattern string) (bool, error) {
	if pattern == "*" {
		return true, nil
	}

	for _, group := range CanonicalGroupOrder {
		if pattern == string(group) {
			return check.Group() == group, nil
		}
	}

	if pattern == check.ID() {
		return true, nil
	}

	matched, err := path.Match(pattern, check.ID())
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return matched, nil
}

// ValidateSelector validates a check selector pattern.
func ValidateSelector(selector string) error {
	if selector == "" {
		return errors.New("check selector cannot be empty")
	}

	if _, err := path.Match(selector, "test.check"); err != nil {
		return fmt.Errorf("invalid check selector pattern %q: %w", selector, err)
	}

	return nil
}
