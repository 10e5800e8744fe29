package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
)

// comparisonOperators lists the operators accepted in range expressions,
// longest first so ">=" is not read as ">".
//
//nolint:gochecknoglobals
var comparisonOperators = []string{">=", "<=", "==", "!=", ">", "<"}

// ErrMixedExpressions is returned when plain versions and range expressions
// are combined in one match.
var ErrMixedExpressions = errors.New("cannot mix plain versions and range expressions")

// Target is the OS release the system is being upgraded to.
type Target struct {
	version semver.Version
	raw     string
}

// NewTarget parses a target release such as "8.6", "9.2" or "v9.0".
func NewTarget(raw string) (*Target, error) {
	v, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid target version %q: %w", raw, err)
	}

	return &Target{version: v, raw: raw}, nil
}

// Parse accepts partial versions ("9" → 9.0.0, "8.6" → 8.6.0) and a leading "v".
func Parse(raw string) (semver.Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return semver.Version{}, errors.New("empty version")
	}

	v, err := semver.ParseTolerant(trimmed)
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version %q: %w", raw, err)
	}

	return v, nil
}

// Version returns the parsed target version.
func (t *Target) Version() semver.Version {
	return t.version
}

// String returns the target as major.minor.
func (t *Target) String() string {
	return fmt.Sprintf("%d.%d", t.version.Major, t.version.Minor)
}

// TargetMajorVersion returns the major release number as a string ("8", "9").
func (t *Target) TargetMajorVersion() string {
	return strconv.FormatUint(t.version.Major, 10)
}

// MatchesTargetVersion reports whether the target matches exprs.
// Invalid expressions never match.
func (t *Target) MatchesTargetVersion(exprs ...string) bool {
	matched, err := Matches(t.version, exprs...)
	if err != nil {
		return false
	}

	return matched
}

// Matches compares v against a list of expressions on major.minor.
//
// Plain versions ("8.6", "9.0") match when v equals any of them.
// Range expressions (">= 8.8", "< 9") must all hold.
func Matches(v semver.Version, exprs ...string) (bool, error) {
	if len(exprs) == 0 {
		return false, errors.New("no version expression given")
	}

	release := semver.Version{Major: v.Major, Minor: v.Minor}

	plain := 0
	for _, expr := range exprs {
		if !hasOperator(expr) {
			plain++
		}
	}

	switch plain {
	case len(exprs):
		for _, expr := range exprs {
			candidate, err := Parse(expr)
			if err != nil {
				return false, err
			}

			if candidate.Major == release.Major && candidate.Minor == release.Minor {
				return true, nil
			}
		}

		return false, nil
	case 0:
		for _, expr := range exprs {
			r, err := parseRange(expr)
			if err != nil {
				return false, err
			}

			if !r(release) {
				return false, nil
			}
		}

		return true, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMixedExpressions, exprs)
	}
}

func hasOperator(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	for _, op := range comparisonOperators {
		if strings.HasPrefix(trimmed, op) {
			return true
		}
	}

	return false
}

// parseRange turns "<op> <version>" with a possibly partial version into a
// semver.Range.
func parseRange(expr string) (semver.Range, error) {
	trimmed := strings.TrimSpace(expr)

	for _, op := range comparisonOperators {
		rest, found := strings.CutPrefix(trimmed, op)
		if !found {
			continue
		}

		v, err := Parse(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", expr, err)
		}

		if op == "==" {
			op = "="
		}

		r, err := semver.ParseRange(op + v.String())
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", expr, err)
		}

		return r, nil
	}

	return nil, fmt.Errorf("invalid range %q: missing comparison operator", expr)
}
