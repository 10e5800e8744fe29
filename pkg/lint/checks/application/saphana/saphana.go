package saphana

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/checks/shared/results"
	"github.com/lburgazzoli/ipu-lint/pkg/report"
	"github.com/lburgazzoli/ipu-lint/pkg/saphana"
)

const kind = "saphana"

// CompatibilityCheck validates that the installed SAP HANA instances allow
// the upgrade to the target release.
type CompatibilityCheck struct {
	check.BaseCheck
}

func NewCompatibilityCheck() *CompatibilityCheck {
	return &CompatibilityCheck{
		BaseCheck: check.BaseCheck{
			CheckGroup:       check.GroupApplication,
			Kind:             kind,
			Type:             check.CheckTypeCompatibility,
			CheckID:          "application.saphana.compatibility",
			CheckName:        "Application :: SAP HANA :: Compatibility",
			CheckDescription: "Validates that installed SAP HANA instances support the target release",
			CheckRemediation: "Update SAP HANA to a version supported on the target release before upgrading",
		},
	}
}

// CanApply returns whether this check should run for the given target.
func (c *CompatibilityCheck) CanApply(_ context.Context, target check.Target) bool {
	return target.Version != nil && target.Arch != nil
}

// Validate executes the check against the provided target.
func (c *CompatibilityCheck) Validate(ctx context.Context, target check.Target) (*result.DiagnosticResult, error) {
	dr := c.NewResult()
	dr.Annotations[check.AnnotationCheckTargetVersion] = target.Version.String()
	dr.Annotations[check.AnnotationCheckFlavour] = target.Flavour

	sink := report.NewCollector()

	collaborators := saphana.Collaborators{
		Version: target.Version,
		Arch:    target.Arch,
		Sink:    sink,
		Log:     target.Log,
	}

	if target.Answers != nil {
		collaborators.Confirmer = target.Answers
	}

	var src saphana.InfoSource
	if target.Facts != nil {
		src = target.Facts
	}

	outcome, err := saphana.NewEvaluator(collaborators).EvaluateSource(ctx, target.Flavour, src)
	if err != nil {
		return nil, err
	}

	results.AttachReports(dr, sink.Reports())
	results.SetCondition(dr, c.condition(outcome, sink.Inhibitors()))

	return dr, nil
}

func (c *CompatibilityCheck) condition(outcome saphana.Outcome, inhibitors int) result.Condition {
	switch {
	case outcome.Skipped:
		return check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionTrue,
			check.ReasonCheckSkipped,
			"Check skipped: %s",
			outcome.Reason,
		)
	case outcome.Reason != "":
		return check.NewCondition(
			check.ConditionTypeSupported,
			metav1.ConditionFalse,
			check.ReasonArchitectureUnsupported,
			"SAP HANA upgrade not possible: %s",
			outcome.Reason,
		)
	case inhibitors > 0:
		return check.NewCondition(
			check.ConditionTypeCompatible,
			metav1.ConditionFalse,
			check.ReasonUpgradeInhibited,
			"Found %d inhibiting finding(s)",
			inhibitors,
		)
	default:
		return check.NewCondition(
			check.ConditionTypeCompatible,
			metav1.ConditionTrue,
			check.ReasonRequirementsMet,
			"SAP HANA instances meet the requirements of the target release",
		)
	}
}
