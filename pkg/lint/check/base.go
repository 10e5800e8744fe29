package check

import (
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
)

// BaseCheck provides common check metadata through composition.
//
// Example usage:
//
//	type CompatibilityCheck struct {
//	    check.BaseCheck
//	}
//
//	func NewCompatibilityCheck() *CompatibilityCheck {
//	    return &CompatibilityCheck{
//	        BaseCheck: check.BaseCheck{
//	            CheckGroup:       check.GroupApplication,
//	            Kind:             "saphana",
//	            Type:             check.CheckTypeCompatibility,
//	            CheckID:          "application.saphana.compatibility",
//	            CheckName:        "Application :: SAP HANA :: Compatibility",
//	            CheckDescription: "Validates that installed SAP HANA instances support the target release",
//	        },
//	    }
//	}
type BaseCheck struct {
	CheckGroup       CheckGroup
	Kind             string
	Type             CheckType
	CheckID          string
	CheckName        string
	CheckDescription string
	CheckRemediation string
}

// ID returns the unique identifier for this check.
func (b BaseCheck) ID() string {
	return b.CheckID
}

// Name returns the human-readable check name.
func (b BaseCheck) Name() string {
	return b.CheckName
}

// Description returns what this check validates.
func (b BaseCheck) Description() string {
	return b.CheckDescription
}

// Remediation returns guidance on how to fix issues found by this check.
func (b BaseCheck) Remediation() string {
	return b.CheckRemediation
}

// Group returns the check group.
func (b BaseCheck) Group() CheckGroup {
	return b.CheckGroup
}

// CheckKind returns the kind of target being checked.
func (b BaseCheck) CheckKind() string {
	return b.Kind
}

// CheckType returns the type of check (e.g., "compatibility").
func (b BaseCheck) CheckType() string {
	return string(b.Type)
}

// NewResult creates a DiagnosticResult initialized with this check's metadata.
func (b BaseCheck) NewResult() *result.DiagnosticResult {
	return result.New(
		string(b.CheckGroup),
		b.Kind,
		string(b.Type),
		b.CheckDescription,
	)
}
