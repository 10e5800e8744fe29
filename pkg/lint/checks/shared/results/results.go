package results

import (
	"strconv"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/report"
)

// SetCondition updates or adds a condition to the diagnostic result.
// If a condition with the same type already exists, it updates it.
// If no condition with that type exists, it adds a new one.
func SetCondition(dr *result.DiagnosticResult, condition result.Condition) {
	for i := range dr.Status.Conditions {
		if dr.Status.Conditions[i].Type == condition.Type {
			dr.Status.Conditions[i] = condition

			return
		}
	}

	dr.Status.Conditions = append(dr.Status.Conditions, condition)
}

// AttachReports appends reports to the diagnostic result and records the
// report and inhibitor counts as annotations.
func AttachReports(dr *result.DiagnosticResult, reports []report.Report) {
	dr.Reports = append(dr.Reports, reports...)

	inhibitors := 0
	for i := range dr.Reports {
		if dr.Reports[i].IsInhibitor() {
			inhibitors++
		}
	}

	if dr.Annotations == nil {
		dr.Annotations = make(map[string]string)
	}

	dr.Annotations[check.AnnotationReportCount] = strconv.Itoa(len(dr.Reports))
	dr.Annotations[check.AnnotationInhibitorCount] = strconv.Itoa(inhibitors)
}
