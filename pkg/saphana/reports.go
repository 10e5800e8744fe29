package saphana

import (
	"fmt"
	"strings"

	"github.com/lburgazzoli/ipu-lint/pkg/report"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
)

const (
	supportedOSURL   = "https://launchpad.support.sap.com/#/notes/2235581"
	supportedOSTitle = "SAP HANA: Supported Operating Systems"

	rhel8UpgradeURL   = "https://access.redhat.com/solutions/5533441"
	rhel8UpgradeTitle = "How do I upgrade from Red Hat Enterprise Linux 7 to Red Hat Enterprise Linux 8 with SAP HANA"
	rhel9UpgradeURL   = "https://access.redhat.com/solutions/6980855"
	rhel9UpgradeTitle = "How to in-place upgrade SAP environments from RHEL 8 to RHEL 9"
)

// Report titles.
const (
	// TitleUnsupportedPlatform is the unsupported platform title for targets
	// supporting x86_64 only. See UnsupportedPlatformTitle.
	TitleUnsupportedPlatform = "SAP HANA upgrades are only supported on X86_64 systems"
	TitleRunning             = "Found running SAP HANA instances"
	TitleLegacyVersion       = "Found SAP HANA 1 which is not supported with the target version of RHEL"
	TitleUpdateRequired      = "SAP HANA needs to be updated before the RHEL upgrade"
	TitleVersionUnchecked    = "SAP HANA version should be checked"
	TitleVersionChecked      = "SAP HANA version has been checked"
)

const uncheckedVersionNotice = "For the target RHEL releases >=8.8 and >=9.2 " +
	"the upgrade tooling does not check RHEL and SAP HANA " +
	"versions compatibility. Please ensure your SAP HANA " +
	"is supported on the target RHEL release, " +
	"otherwise proceed on your own risk. " +
	"SAP HANA: Supported Operating Systems " +
	supportedOSURL

// UnsupportedPlatformTitle names the architectures SAP HANA upgrades are
// supported on for the target major version.
func UnsupportedPlatformTitle(targetMajor string) string {
	return "SAP HANA upgrades are only supported on " + supportedPlatforms(targetMajor) + " systems"
}

func supportedPlatforms(targetMajor string) string {
	names := SupportedArchitectures(targetMajor)

	upper := make([]string, 0, len(names))
	for _, n := range names {
		upper = append(upper, strings.ToUpper(n))
	}

	if len(upper) == 1 {
		return upper[0]
	}

	return strings.Join(upper[:len(upper)-1], ", ") + " and " + upper[len(upper)-1]
}

func unsupportedPlatformReport(targetMajor string) report.Report {
	link := report.WithExternalLink(rhel9UpgradeURL, rhel9UpgradeTitle)
	if targetMajor == "8" {
		link = report.WithExternalLink(rhel8UpgradeURL, rhel8UpgradeTitle)
	}

	return report.New(
		UnsupportedPlatformTitle(targetMajor),
		"Upgrades for SAP HANA are only supported on "+supportedPlatforms(targetMajor)+" systems."+
			" For more information please consult the documentation.",
		report.WithSeverity(report.SeverityHigh),
		report.AsInhibitor(),
		link,
	)
}

func runningReport() report.Report {
	return report.New(
		TitleRunning,
		"In order to perform a system upgrade it is necessary that all instances of SAP HANA are stopped.",
		report.WithSeverity(report.SeverityHigh),
		report.WithRemediation("Shutdown all SAP HANA instances before you continue with the upgrade."),
		report.AsInhibitor(),
	)
}

func legacyVersionReport(products *Products) report.Report {
	return report.New(
		TitleLegacyVersion,
		"SAP HANA 1.00 is not supported with the version of RHEL you are upgrading to.\n\n"+
			"The following instances have been detected to be version 1.00:\n"+
			products.Detected(),
		report.WithSeverity(report.SeverityHigh),
		report.WithRemediation("In order to upgrade RHEL, you will have to upgrade your SAP HANA 1.00 software to"+
			" the version supported on the target RHEL release first."),
		report.WithExternalLink(supportedOSURL, supportedOSTitle),
		report.AsInhibitor(),
	)
}

func updateRequiredReport(products *Products, minimal string) report.Report {
	return report.New(
		TitleUpdateRequired,
		fmt.Sprintf("A newer version of SAP HANA is required in order continue with the upgrade."+
			" %s is required for the target version of RHEL.\n\n"+
			"The following SAP HANA instances have been detected to be installed with a lower version"+
			" than required on the target system:\n%s", minimal, products.Detected()),
		report.WithSeverity(report.SeverityHigh),
		report.WithRemediation("Update SAP HANA at least to "+minimal),
		report.WithExternalLink(supportedOSURL, supportedOSTitle),
		report.AsInhibitor(),
	)
}

func versionUncheckedReport(q answers.Question) report.Report {
	return report.New(
		TitleVersionUnchecked,
		uncheckedVersionNotice,
		report.WithSeverity(report.SeverityHigh),
		report.WithRemediation(fmt.Sprintf(
			"Verify that SAP HANA is supported on the target RHEL release and confirm it"+
				" by setting %s to true in the answer file.", q)),
		report.WithExternalLink(supportedOSURL, supportedOSTitle),
		report.AsInhibitor(),
	)
}

func versionCheckedReport() report.Report {
	return report.New(
		TitleVersionChecked,
		"User has asserted the upgrade should proceed for the currently installed SAP HANA version.",
		report.WithSeverity(report.SeverityInfo),
	)
}
