package check

import (
	"context"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
)

// CheckGroup classifies checks into logical groups.
type CheckGroup string

const (
	GroupPlatform    CheckGroup = "platform"
	GroupApplication CheckGroup = "application"
)

// CanonicalGroupOrder defines the execution order for check groups.
// Platform checks run first, application checks after.
//
//nolint:gochecknoglobals // Canonical ordering must be accessible across packages
var CanonicalGroupOrder = []CheckGroup{
	GroupPlatform,
	GroupApplication,
}

// Check represents a pre-upgrade diagnostic test.
//
// Validate returns a result.DiagnosticResult carrying one or more conditions
// and the reports emitted by the check:
//
//	func (c *CompatibilityCheck) Validate(ctx context.Context, target check.Target) (*result.DiagnosticResult, error) {
//	    dr := c.NewResult()
//
//	    dr.Reports = append(dr.Reports, report.New("Found running instances", "...", report.AsInhibitor()))
//	    dr.Status.Conditions = append(dr.Status.Conditions, check.NewCondition(
//	        check.ConditionTypeCompatible,
//	        metav1.ConditionFalse,
//	        check.ReasonUpgradeInhibited,
//	        "%d inhibiting finding(s)",
//	        1,
//	    ))
//
//	    return dr, nil
//	}
//
// An error returned by Validate is converted by the Executor into an
// Unknown condition with advisory impact.
type Check interface {
	// ID returns the unique identifier for this check
	ID() string

	// Name returns the human-readable check name
	Name() string

	// Description returns what this check validates
	Description() string

	// Group returns the check group
	Group() CheckGroup

	// CanApply returns whether this check should run for the target.
	CanApply(ctx context.Context, target Target) bool

	// Validate executes the check against the provided target
	Validate(ctx context.Context, target Target) (*result.DiagnosticResult, error)
}
