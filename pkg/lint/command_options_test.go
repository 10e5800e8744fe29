package lint_test

import (
	"bytes"
	"strings"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/lint"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/report"

	. "github.com/onsi/gomega"
)

func TestValidateCheckSelectors(t *testing.T) {
	tests := []struct {
		name      string
		selectors []string
		wantErr   bool
	}{
		{
			name:      "single wildcard valid",
			selectors: []string{"*"},
			wantErr:   false,
		},
		{
			name:      "multiple patterns valid",
			selectors: []string{"platform.*", "application.*"},
			wantErr:   false,
		},
		{
			name:      "mixed patterns valid",
			selectors: []string{"platform", "*saphana*", "application.saphana.compatibility"},
			wantErr:   false,
		},
		{
			name:      "empty slice invalid",
			selectors: []string{},
			wantErr:   true,
		},
		{
			name:      "nil slice invalid",
			selectors: nil,
			wantErr:   true,
		},
		{
			name:      "one invalid pattern fails all",
			selectors: []string{"application.*", "["},
			wantErr:   true,
		},
		{
			name:      "empty string in slice invalid",
			selectors: []string{"application.*", ""},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			err := lint.ValidateCheckSelectors(tt.selectors)

			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
			} else {
				g.Expect(err).ToNot(HaveOccurred())
			}
		})
	}
}

func TestOutputFormat_Validate(t *testing.T) {
	g := NewWithT(t)

	g.Expect(lint.OutputFormatTable.Validate()).To(Succeed())
	g.Expect(lint.OutputFormatJSON.Validate()).To(Succeed())
	g.Expect(lint.OutputFormatYAML.Validate()).To(Succeed())
	g.Expect(lint.OutputFormat("xml").Validate()).To(MatchError(ContainSubstring("invalid output format: xml")))
}

func passCondition() result.Condition {
	return check.NewCondition(check.ConditionTypeCompatible, metav1.ConditionTrue, check.ReasonRequirementsMet, "check passed")
}

func inhibitedCondition(count int) result.Condition {
	return check.NewCondition(check.ConditionTypeCompatible, metav1.ConditionFalse, check.ReasonUpgradeInhibited, "Found %d inhibiting finding(s)", count)
}

func execution(group check.CheckGroup, kind string, condition result.Condition, reports ...report.Report) check.CheckExecution {
	dr := result.New(string(group), kind, "compatibility", "description")
	dr.Status.Conditions = append(dr.Status.Conditions, condition)
	dr.Reports = append(dr.Reports, reports...)

	return check.CheckExecution{Result: dr}
}

func TestOutputTable_OneRowPerReport(t *testing.T) {
	g := NewWithT(t)

	results := []check.CheckExecution{
		execution(check.GroupPlatform, "facts", passCondition()),
		execution(check.GroupApplication, "saphana", inhibitedCondition(1),
			report.New("Found running SAP HANA instances", "summary", report.AsInhibitor(), report.WithSeverity(report.SeverityHigh)),
			report.New("SAP HANA version has been checked", "summary"),
		),
	}

	var buf bytes.Buffer
	g.Expect(lint.OutputTable(&buf, results, lint.TableOutputOptions{})).To(Succeed())

	output := buf.String()
	g.Expect(output).To(ContainSubstring("STATUS"))
	g.Expect(output).To(ContainSubstring("GROUPS"))
	g.Expect(output).To(ContainSubstring("check passed"))
	g.Expect(output).To(ContainSubstring("Found running SAP HANA instances"))
	g.Expect(output).To(ContainSubstring("sanity, inhibitor"))
	g.Expect(output).To(ContainSubstring("SAP HANA version has been checked"))
	g.Expect(output).To(ContainSubstring("Checks: 2 | Passed: 1 | Warnings: 0 | Failed: 1"))
	g.Expect(output).To(ContainSubstring("Reports: 2 | Inhibitors: 1"))
	g.Expect(output).ToNot(ContainSubstring("Remediation:"))
}

func TestOutputTable_ReportDetails(t *testing.T) {
	g := NewWithT(t)

	results := []check.CheckExecution{
		execution(check.GroupApplication, "saphana", inhibitedCondition(1),
			report.New(
				"SAP HANA needs to be updated before the RHEL upgrade",
				"- Name: HDB\n  Instances: 00",
				report.AsInhibitor(),
				report.WithRemediation("Update SAP HANA at least to SPS05 rev 59.02"),
				report.WithExternalLink("https://launchpad.support.sap.com/#/notes/2235581", "SAP HANA: Supported Operating Systems"),
			),
		),
	}

	var buf bytes.Buffer
	g.Expect(lint.OutputTable(&buf, results, lint.TableOutputOptions{ShowReportDetails: true})).To(Succeed())

	output := buf.String()
	g.Expect(output).To(ContainSubstring("    - Name: HDB\n"))
	g.Expect(output).To(ContainSubstring("      Instances: 00\n"))
	g.Expect(output).To(ContainSubstring("Remediation: Update SAP HANA at least to SPS05 rev 59.02"))
	g.Expect(output).To(ContainSubstring("Link: SAP HANA: Supported Operating Systems (https://launchpad.support.sap.com/#/notes/2235581)"))

	// details follow the table and precede the summary
	g.Expect(strings.Index(output, "Remediation:")).To(BeNumerically("<", strings.Index(output, "Summary:")))
}

func TestOutputTable_Empty(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	g.Expect(lint.OutputTable(&buf, nil, lint.TableOutputOptions{})).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("Checks: 0 | Passed: 0 | Warnings: 0 | Failed: 0"))
}

func TestFlattenResults_CanonicalOrder(t *testing.T) {
	g := NewWithT(t)

	resultsByGroup := map[check.CheckGroup][]check.CheckExecution{
		check.GroupApplication: {
			execution(check.GroupApplication, "zeta", passCondition()),
			execution(check.GroupApplication, "saphana", passCondition()),
		},
		check.GroupPlatform: {
			execution(check.GroupPlatform, "facts", passCondition()),
		},
	}

	flat := lint.FlattenResults(resultsByGroup)

	kinds := make([]string, 0, len(flat))
	for _, exec := range flat {
		kinds = append(kinds, exec.Result.Kind)
	}

	g.Expect(kinds).To(Equal([]string{"facts", "saphana", "zeta"}))
}

func TestOutputJSONAndYAML(t *testing.T) {
	g := NewWithT(t)

	results := []check.CheckExecution{
		execution(check.GroupApplication, "saphana", inhibitedCondition(1),
			report.New("Found running SAP HANA instances", "summary", report.AsInhibitor()),
		),
	}

	list := lint.NewResultList(results, "8.10", "saphana", "x86_64")

	var jsonOut bytes.Buffer
	g.Expect(lint.OutputJSON(&jsonOut, list)).To(Succeed())
	g.Expect(jsonOut.String()).To(ContainSubstring(`"targetVersion": "8.10"`))
	g.Expect(jsonOut.String()).To(ContainSubstring(`"groups": [`))
	g.Expect(jsonOut.String()).To(ContainSubstring(`"impact": "blocking"`))

	var yamlOut bytes.Buffer
	g.Expect(lint.OutputYAML(&yamlOut, list)).To(Succeed())
	g.Expect(yamlOut.String()).To(HavePrefix("---\n"))
	g.Expect(yamlOut.String()).To(ContainSubstring("flavour: saphana"))
	g.Expect(yamlOut.String()).To(ContainSubstring("- inhibitor"))
}

func TestOutputTable_TerminalWidthWrapsTitles(t *testing.T) {
	g := NewWithT(t)

	results := []check.CheckExecution{
		execution(check.GroupApplication, "saphana", inhibitedCondition(1),
			report.New("SAP HANA needs to be updated before the RHEL upgrade", "summary", report.AsInhibitor()),
		),
	}

	var buf bytes.Buffer
	g.Expect(lint.OutputTable(&buf, results, lint.TableOutputOptions{TerminalWidth: 80})).To(Succeed())
	g.Expect(buf.String()).ToNot(ContainSubstring("SAP HANA needs to be updated before the RHEL upgrade"))
	g.Expect(buf.String()).To(ContainSubstring("Reports: 1 | Inhibitors: 1"))
}
