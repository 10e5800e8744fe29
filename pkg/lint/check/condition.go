package check

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
)

// ConditionOption is a functional option for customizing condition creation.
type ConditionOption func(*result.Condition)

// WithImpact sets the impact explicitly, overriding auto-derivation.
//
// Example:
//
//	// Status=False normally derives Impact=Blocking
//	check.NewCondition(
//	    check.ConditionTypeCompatible,
//	    metav1.ConditionFalse,
//	    check.ReasonConfirmationRequired,
//	    "SAP HANA version compatibility was not confirmed",
//	    check.WithImpact(result.ImpactAdvisory),
//	)
func WithImpact(impact result.Impact) ConditionOption {
	return func(c *result.Condition) {
		c.Impact = impact
	}
}

// deriveImpact derives the default impact from condition status.
func deriveImpact(status metav1.ConditionStatus) result.Impact {
	switch status {
	case metav1.ConditionTrue:
		return result.ImpactNone
	case metav1.ConditionFalse:
		return result.ImpactBlocking
	case metav1.ConditionUnknown:
		return result.ImpactAdvisory
	}

	return result.ImpactNone
}

// NewCondition creates a new Condition with automatic Impact derivation.
// Impact is derived from Status unless explicitly overridden via WithImpact option:
//   - Status=True  → Impact=None      (requirement met)
//   - Status=False → Impact=Blocking  (requirement not met, blocks upgrade)
//   - Status=Unknown → Impact=Advisory (unable to determine, proceed with caution)
//
// The message parameter supports printf-style formatting when args are provided.
//
// Examples:
//
//	condition := check.NewCondition(
//	    check.ConditionTypeCompatible,
//	    metav1.ConditionFalse,
//	    check.ReasonUpgradeInhibited,
//	    "Found %d inhibiting finding(s)",
//	    count,
//	)
func NewCondition(
	conditionType string,
	status metav1.ConditionStatus,
	reason string,
	message string,
	argsAndOptions ...any,
) result.Condition {
	// Separate printf args from functional options.
	var options []ConditionOption
	var messageArgs []any

	for _, arg := range argsAndOptions {
		if opt, ok := arg.(ConditionOption); ok {
			options = append(options, opt)
		} else {
			messageArgs = append(messageArgs, arg)
		}
	}

	if len(messageArgs) > 0 {
		message = fmt.Sprintf(message, messageArgs...)
	}

	c := result.Condition{
		Condition: metav1.Condition{
			Type:               conditionType,
			Status:             status,
			Reason:             reason,
			Message:            message,
			LastTransitionTime: metav1.Now(),
		},
		Impact: deriveImpact(status),
	}

	for _, opt := range options {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("invalid condition: %v", err))
	}

	return c
}

// Standard Condition Types.
const (
	// ConditionTypeValidated indicates the check ran to completion.
	ConditionTypeValidated = "Validated"

	// ConditionTypeCompatible indicates compatibility with the target release.
	ConditionTypeCompatible = "Compatible"

	// ConditionTypeSupported indicates the platform is supported for the upgrade.
	ConditionTypeSupported = "Supported"
)

// Standard Reason Values - Success.
const (
	// ReasonRequirementsMet indicates all requirements are satisfied.
	ReasonRequirementsMet = "RequirementsMet"

	// ReasonVersionCompatible indicates version compatibility is confirmed.
	ReasonVersionCompatible = "VersionCompatible"
)

// Standard Reason Values - Failure.
const (
	// ReasonVersionIncompatible indicates version incompatibility.
	ReasonVersionIncompatible = "VersionIncompatible"

	// ReasonUpgradeInhibited indicates at least one inhibiting report was emitted.
	ReasonUpgradeInhibited = "UpgradeInhibited"

	// ReasonArchitectureUnsupported indicates the host architecture is not supported.
	ReasonArchitectureUnsupported = "ArchitectureUnsupported"
)

// Standard Reason Values - Unknown/Error.
const (
	// ReasonCheckExecutionFailed indicates the check execution failed.
	ReasonCheckExecutionFailed = "CheckExecutionFailed"

	// ReasonCheckSkipped indicates the check was skipped.
	ReasonCheckSkipped = "CheckSkipped"

	// ReasonInsufficientData indicates insufficient data to determine status.
	ReasonInsufficientData = "InsufficientData"

	// ReasonTimeout indicates the check did not complete in time.
	ReasonTimeout = "Timeout"
)
