package result

import (
	"errors"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/report"
)

const (
	// Validation error messages.
	errMsgGroupEmpty              = "group must not be empty"
	errMsgKindEmpty               = "kind must not be empty"
	errMsgNameEmpty               = "name must not be empty"
	errMsgConditionsEmpty         = "status.conditions must contain at least one condition"
	errMsgConditionTypeEmpty      = "condition with empty type found"
	errMsgConditionReasonEmpty    = "condition %q has empty reason"
	errMsgConditionInvalidStatus  = "condition %q has invalid status (must be True, False, or Unknown)"
	errMsgConditionInvalidImpact  = "condition %q has invalid impact (must be blocking, advisory, or empty)"
	errMsgAnnotationInvalidFormat = "annotation key %q must be in domain/key format (e.g., ipu-lint.io/flavour)"
)

// Impact describes how a condition affects the upgrade.
type Impact string

const (
	// ImpactBlocking means the upgrade must not proceed.
	ImpactBlocking Impact = "blocking"
	// ImpactAdvisory means the upgrade may proceed with caution.
	ImpactAdvisory Impact = "advisory"
	// ImpactNone is omitted from output.
	ImpactNone Impact = ""
)

// Condition is a metav1.Condition with the impact it has on the upgrade.
type Condition struct {
	metav1.Condition `json:",inline" yaml:",inline"`

	Impact Impact `json:"impact,omitempty" yaml:"impact,omitempty"`
}

// Validate checks the condition fields.
func (c *Condition) Validate() error {
	if c.Type == "" {
		return errors.New(errMsgConditionTypeEmpty)
	}

	switch c.Status {
	case metav1.ConditionTrue, metav1.ConditionFalse, metav1.ConditionUnknown:
	default:
		return fmt.Errorf(errMsgConditionInvalidStatus, c.Type)
	}

	if c.Reason == "" {
		return fmt.Errorf(errMsgConditionReasonEmpty, c.Type)
	}

	switch c.Impact {
	case ImpactBlocking, ImpactAdvisory, ImpactNone:
	default:
		return fmt.Errorf(errMsgConditionInvalidImpact, c.Type)
	}

	return nil
}

// DiagnosticSpec describes what the check validates.
type DiagnosticSpec struct {
	// Description provides a detailed explanation of the check purpose and significance
	Description string `json:"description" yaml:"description"`
}

// DiagnosticStatus contains the condition-based validation results.
type DiagnosticStatus struct {
	// Conditions is an array of validation conditions ordered by execution sequence
	Conditions []Condition `json:"conditions" yaml:"conditions"`
}

// DiagnosticResult represents a diagnostic check result with flattened metadata fields.
type DiagnosticResult struct {
	// Group is the check group (e.g., "platform", "application")
	Group string `json:"group" yaml:"group"`

	// Kind is the specific target being checked (e.g., "saphana")
	Kind string `json:"kind" yaml:"kind"`

	// Name is the check identifier (e.g., "compatibility")
	Name string `json:"name" yaml:"name"`

	// Annotations contains optional key-value metadata with domain-qualified keys
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// Spec describes what the check validates
	Spec DiagnosticSpec `json:"spec" yaml:"spec"`

	// Status contains the condition-based validation results
	Status DiagnosticStatus `json:"status" yaml:"status"`

	// Reports are the findings emitted by the check, in emission order.
	Reports []report.Report `json:"reports,omitempty" yaml:"reports,omitempty"`
}

// isValidAnnotationKey validates that an annotation key follows the domain/key format.
// Valid examples: ipu-lint.io/flavour, example.com/name
// Invalid examples: version, /name, example.com/.
func isValidAnnotationKey(key string) bool {
	domain, name, ok := strings.Cut(key, "/")
	if !ok || strings.Contains(name, "/") {
		return false
	}

	if domain == "" || name == "" {
		return false
	}

	return strings.Contains(domain, ".")
}

// Validate checks if the diagnostic result is valid.
func (r *DiagnosticResult) Validate() error {
	if r.Group == "" {
		return errors.New(errMsgGroupEmpty)
	}
	if r.Kind == "" {
		return errors.New(errMsgKindEmpty)
	}
	if r.Name == "" {
		return errors.New(errMsgNameEmpty)
	}

	for key := range r.Annotations {
		if !isValidAnnotationKey(key) {
			return fmt.Errorf(errMsgAnnotationInvalidFormat, key)
		}
	}

	if len(r.Status.Conditions) == 0 {
		return errors.New(errMsgConditionsEmpty)
	}

	for i := range r.Status.Conditions {
		if err := r.Status.Conditions[i].Validate(); err != nil {
			return err
		}
	}

	for i := range r.Reports {
		if err := r.Reports[i].Validate(); err != nil {
			return fmt.Errorf("reports[%d]: %w", i, err)
		}
	}

	return nil
}

// New creates a new diagnostic result.
func New(
	group string,
	kind string,
	name string,
	description string,
) *DiagnosticResult {
	return &DiagnosticResult{
		Group:       group,
		Kind:        kind,
		Name:        name,
		Annotations: make(map[string]string),
		Spec: DiagnosticSpec{
			Description: description,
		},
		Status: DiagnosticStatus{
			Conditions: []Condition{},
		},
		Reports: []report.Report{},
	}
}

// IsFailing returns true if any condition has status False or Unknown.
func (r *DiagnosticResult) IsFailing() bool {
	for _, cond := range r.Status.Conditions {
		if cond.Status == metav1.ConditionFalse || cond.Status == metav1.ConditionUnknown {
			return true
		}
	}

	return false
}

// GetMessage returns the message of the first condition.
func (r *DiagnosticResult) GetMessage() string {
	if len(r.Status.Conditions) == 0 {
		return ""
	}

	return r.Status.Conditions[0].Message
}

// GetImpact returns the highest impact across all conditions
// (blocking > advisory > none).
func (r *DiagnosticResult) GetImpact() Impact {
	impact := ImpactNone

	for _, cond := range r.Status.Conditions {
		switch cond.Impact {
		case ImpactBlocking:
			return ImpactBlocking
		case ImpactAdvisory:
			impact = ImpactAdvisory
		case ImpactNone:
		}
	}

	return impact
}

// GetStatusString returns a string representation of the overall status.
// Pass: All conditions are True
// Fail: Any condition is False
// Error: Any condition is Unknown.
func (r *DiagnosticResult) GetStatusString() string {
	if len(r.Status.Conditions) == 0 {
		return "Unknown"
	}

	for _, cond := range r.Status.Conditions {
		if cond.Status == metav1.ConditionFalse {
			return "Fail"
		}
		if cond.Status == metav1.ConditionUnknown {
			return "Error"
		}
	}

	return "Pass"
}

// DiagnosticResultList represents a list of diagnostic results.
type DiagnosticResultList struct {
	TargetVersion string              `json:"targetVersion"          yaml:"targetVersion"`
	Flavour       string              `json:"flavour"                yaml:"flavour"`
	Architecture  string              `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Results       []*DiagnosticResult `json:"results"                yaml:"results"`
}

// NewDiagnosticResultList creates a new list.
func NewDiagnosticResultList(targetVersion string, flavour string, architecture string) *DiagnosticResultList {
	return &DiagnosticResultList{
		TargetVersion: targetVersion,
		Flavour:       flavour,
		Architecture:  architecture,
		Results:       make([]*DiagnosticResult, 0),
	}
}

// Inhibitors returns the number of inhibiting reports across all results.
func (l *DiagnosticResultList) Inhibitors() int {
	count := 0

	for _, r := range l.Results {
		for i := range r.Reports {
			if r.Reports[i].IsInhibitor() {
				count++
			}
		}
	}

	return count
}
