package facts

import (
	"context"
	"errors"
	"io/fs"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/checks/shared/results"
	"github.com/lburgazzoli/ipu-lint/pkg/saphana"
)

const kind = "facts"

// AvailabilityCheck validates that the facts collected on the system can be
// read before the application checks consume them.
type AvailabilityCheck struct {
	check.BaseCheck
}

func NewAvailabilityCheck() *AvailabilityCheck {
	return &AvailabilityCheck{
		BaseCheck: check.BaseCheck{
			CheckGroup:       check.GroupPlatform,
			Kind:             kind,
			Type:             check.CheckTypePlatform,
			CheckID:          "platform.facts.availability",
			CheckName:        "Platform :: Facts :: Availability",
			CheckDescription: "Validates that the facts document collected on the system is readable and well formed",
			CheckRemediation: "Collect the system facts again and pass the document with --facts",
		},
	}
}

// CanApply returns whether this check should run for the given target.
// Facts are only consumed by the saphana flavour.
func (c *AvailabilityCheck) CanApply(_ context.Context, target check.Target) bool {
	return target.Flavour == saphana.Flavour
}

// Validate executes the check against the provided target.
func (c *AvailabilityCheck) Validate(ctx context.Context, target check.Target) (*result.DiagnosticResult, error) {
	dr := c.NewResult()
	dr.Annotations[check.AnnotationCheckFlavour] = target.Flavour

	if target.Facts == nil {
		results.SetCondition(dr, check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionUnknown,
			check.ReasonInsufficientData,
			"No facts document was provided",
		))

		return dr, nil
	}

	info, err := target.Facts.SapHanaInfo(ctx)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		results.SetCondition(dr, check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionUnknown,
			check.ReasonInsufficientData,
			"Facts document not found: %v",
			err,
		))
	case err != nil:
		results.SetCondition(dr, check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionFalse,
			check.ReasonInsufficientData,
			"Facts document is invalid: %v",
			err,
			check.WithImpact(result.ImpactAdvisory),
		))
	case info == nil:
		results.SetCondition(dr, check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionTrue,
			check.ReasonRequirementsMet,
			"Facts document has no SAP HANA section",
		))
	default:
		results.SetCondition(dr, check.NewCondition(
			check.ConditionTypeValidated,
			metav1.ConditionTrue,
			check.ReasonRequirementsMet,
			"Found %d SAP HANA instance(s)",
			len(info.Instances),
		))
	}

	return dr, nil
}
