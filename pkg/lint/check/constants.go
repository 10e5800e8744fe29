package check

// CheckType describes what a check verifies.
type CheckType string

// Check type names used across multiple packages.
const (
	CheckTypeCompatibility CheckType = "compatibility"
	CheckTypePlatform      CheckType = "platform"
)

// Annotation keys used across multiple packages.
const (
	// AnnotationCheckTargetVersion is the release being upgraded to.
	AnnotationCheckTargetVersion = "check.ipu-lint.io/target-version"

	// AnnotationCheckFlavour is the upgrade flavour.
	AnnotationCheckFlavour = "check.ipu-lint.io/flavour"

	// AnnotationReportCount is the number of reports emitted by the check.
	AnnotationReportCount = "check.ipu-lint.io/report-count"

	// AnnotationInhibitorCount is the number of inhibiting reports emitted by the check.
	AnnotationInhibitorCount = "check.ipu-lint.io/inhibitor-count"
)
