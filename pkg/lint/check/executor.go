package check

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/util/iostreams"
)

// CheckExecution bundles a check with its execution result and any error encountered.
type CheckExecution struct {
	Check  Check
	Result *result.DiagnosticResult
	Error  error
}

// Executor orchestrates check execution.
type Executor struct {
	io iostreams.Interface
}

// NewExecutor creates a new check executor.
func NewExecutor(io iostreams.Interface) *Executor {
	return &Executor{
		io: io,
	}
}

// CheckContextError returns the context error, if any, wrapped for reporting.
func CheckContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done: %w", err)
	}

	return nil
}

// Execute runs the given checks against the target in order.
func (e *Executor) Execute(ctx context.Context, target Target, checks []Check) []CheckExecution {
	return e.executeChecks(ctx, target, checks)
}

// executeChecks runs the provided checks against the target sequentially.
func (e *Executor) executeChecks(ctx context.Context, target Target, checks []Check) []CheckExecution {
	results := make([]CheckExecution, 0, len(checks))

	for _, check := range checks {
		if err := CheckContextError(ctx); err != nil {
			break
		}

		if !check.CanApply(ctx, target) {
			continue
		}

		exec := e.executeCheck(ctx, target, check)
		results = append(results, exec)
	}

	return results
}

// executeCheck runs a single check and captures the result or error.
func (e *Executor) executeCheck(ctx context.Context, target Target, check Check) CheckExecution {
	if target.IO == nil {
		target.IO = e.io
	}

	checkResult, err := check.Validate(ctx, target)

	if err != nil {
		var message string
		var reason string

		switch {
		case errors.Is(err, context.DeadlineExceeded):
			reason = ReasonTimeout
			message = "Check did not complete before the timeout"
		case errors.Is(err, fs.ErrNotExist):
			reason = ReasonInsufficientData
			message = "Facts document not found"
		default:
			reason = ReasonCheckExecutionFailed
		}

		if e.io != nil {
			e.io.Errorf("Check %s failed: %v", check.Name(), err)
		}

		errorResult := newFallbackResult(check)

		var condition result.Condition
		if message == "" {
			condition = NewCondition(
				ConditionTypeValidated,
				metav1.ConditionUnknown,
				reason,
				"Check execution failed: %v",
				err,
			)
		} else {
			condition = NewCondition(
				ConditionTypeValidated,
				metav1.ConditionUnknown,
				reason,
				message,
			)
		}

		errorResult.Status.Conditions = []result.Condition{condition}

		return CheckExecution{
			Check:  check,
			Result: errorResult,
			Error:  err,
		}
	}

	if err := checkResult.Validate(); err != nil {
		invalidResult := newFallbackResult(check)
		invalidResult.Status.Conditions = []result.Condition{
			NewCondition(
				ConditionTypeValidated,
				metav1.ConditionUnknown,
				ReasonCheckExecutionFailed,
				"Invalid check result: %v",
				err,
			),
		}

		return CheckExecution{
			Check:  check,
			Result: invalidResult,
			Error:  fmt.Errorf("invalid result from check %s: %w", check.ID(), err),
		}
	}

	return CheckExecution{
		Check:  check,
		Result: checkResult,
		Error:  nil,
	}
}

// newFallbackResult creates the result reported in place of a failed check.
// Checks built on BaseCheck provide their own group, kind and type; other
// checks are identified by ID.
func newFallbackResult(c Check) *result.DiagnosticResult {
	if rf, ok := c.(interface{ NewResult() *result.DiagnosticResult }); ok {
		return rf.NewResult()
	}

	return result.New(string(c.Group()), c.ID(), c.Name(), c.Description())
}
