package lint

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	printerjson "github.com/lburgazzoli/ipu-lint/pkg/printer/json"
	"github.com/lburgazzoli/ipu-lint/pkg/printer/table"
	printeryaml "github.com/lburgazzoli/ipu-lint/pkg/printer/yaml"
	"github.com/lburgazzoli/ipu-lint/pkg/report"
	"github.com/lburgazzoli/ipu-lint/pkg/util/iostreams"
)

// OutputFormat represents the output format for the lint command.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"

	// DefaultTimeout is the default timeout for the lint command.
	DefaultTimeout = 5 * time.Minute
)

//nolint:gochecknoglobals
var (
	// Table output symbols.
	statusPass = color.New(color.FgGreen).Sprint("✓")
	statusWarn = color.New(color.FgYellow).Sprint("⚠")
	statusFail = color.New(color.FgRed).Sprint("✗")

	// Report severity formatting.
	severityHigh   = color.New(color.FgRed).Sprint(report.SeverityHigh)
	severityMedium = color.New(color.FgYellow).Add(color.Bold).Sprint(report.SeverityMedium)
	severityLow    = color.New(color.FgCyan).Sprint(report.SeverityLow)
	severityInfo   = string(report.SeverityInfo)

	// Report group formatting.
	groupInhibitor = color.New(color.FgRed).Add(color.Bold).Sprint(report.GroupInhibitor)

	// Table headers.
	tableHeaders = []string{"STATUS", "GROUP", "CHECK", "SEVERITY", "TITLE", "GROUPS"}
)

// Validate checks if the output format is valid.
func (o OutputFormat) Validate() error {
	switch o {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: table, json, yaml)", o)
	}
}

// SharedOptions contains options common to commands running checks.
type SharedOptions struct {
	// IO provides structured access to stdin, stdout, stderr with convenience methods
	IO iostreams.Interface

	// OutputFormat specifies the output format (table, json, yaml)
	OutputFormat OutputFormat

	// CheckSelectors filters which checks to run (glob patterns)
	CheckSelectors []string

	// FailOnInhibitor exits with non-zero code if inhibiting findings detected
	FailOnInhibitor bool

	// FailOnAdvisory exits with non-zero code if advisory findings detected
	FailOnAdvisory bool

	// Verbose enables progress messages and report details (default: false, quiet by default)
	Verbose bool

	// Debug enables debug level diagnostic logs
	Debug bool

	// Timeout is the maximum duration for command execution
	Timeout time.Duration

	// ConfigFile is the optional file providing flag defaults
	ConfigFile string

	// Log receives diagnostic logs (populated during Complete)
	Log *logrus.Logger
}

// NewSharedOptions creates a new SharedOptions with defaults.
func NewSharedOptions(streams genericiooptions.IOStreams) *SharedOptions {
	return &SharedOptions{
		OutputFormat:    OutputFormatTable,
		CheckSelectors:  []string{"*"}, // Run all checks by default
		FailOnInhibitor: true,           // Exit with error on inhibitors (default)
		FailOnAdvisory:  false,          // Don't exit on advisory findings by default
		Timeout:         DefaultTimeout,
		IO:              iostreams.NewIOStreams(streams.In, streams.Out, streams.ErrOut),
	}
}

// Complete creates the logger and performs pre-validation setup.
func (o *SharedOptions) Complete() error {
	log := logrus.New()
	log.SetOutput(o.IO.ErrWriter())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if o.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	o.Log = log

	// Wrap IO with QuietWrapper if NOT in verbose mode (default is quiet)
	if !o.Verbose {
		o.IO = iostreams.NewQuietWrapper(o.IO)
	}

	return nil
}

// Validate checks that all required options are valid.
func (o *SharedOptions) Validate() error {
	if err := o.OutputFormat.Validate(); err != nil {
		return err
	}

	if err := ValidateCheckSelectors(o.CheckSelectors); err != nil {
		return err
	}

	if o.Timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}

	return nil
}

// ValidateCheckSelectors validates every check selector pattern.
func ValidateCheckSelectors(selectors []string) error {
	if len(selectors) == 0 {
		return errors.New("at least one check selector is required")
	}

	for _, selector := range selectors {
		if err := check.ValidateSelector(selector); err != nil {
			return err
		}
	}

	return nil
}

// CommandOptions contains configuration for creating a Command using struct-based initialization.
//
// Example:
//
//	cmd := lint.NewCommandWithOptions(lint.CommandOptions{
//	    Streams:       streams,
//	    TargetVersion: "8.10",
//	    Flavour:       "saphana",
//	})
type CommandOptions struct {
	// Streams provides access to stdin, stdout, stderr
	Streams genericiooptions.IOStreams

	// TargetVersion is the release being upgraded to
	TargetVersion string

	// Flavour is the upgrade flavour
	Flavour string

	// Shared allows passing a pre-configured SharedOptions (advanced use case)
	Shared *SharedOptions
}

// CommandOption is a functional option for configuring a Command.
//
// Example:
//
//	cmd := lint.NewCommandWithFunctionalOptions(
//	    lint.WithStreams(streams),
//	    lint.WithTargetVersion("8.10"),
//	)
type CommandOption func(*Command)

// WithStreams returns a CommandOption that sets the IO streams.
func WithStreams(streams genericiooptions.IOStreams) CommandOption {
	return func(c *Command) {
		if c.SharedOptions == nil {
			c.SharedOptions = NewSharedOptions(streams)
		} else {
			c.IO = iostreams.NewIOStreams(streams.In, streams.Out, streams.ErrOut)
		}
	}
}

// WithTargetVersion returns a CommandOption that sets the target version.
func WithTargetVersion(version string) CommandOption {
	return func(c *Command) {
		c.TargetVersion = version
	}
}

// WithFlavour returns a CommandOption that sets the upgrade flavour.
func WithFlavour(flavour string) CommandOption {
	return func(c *Command) {
		c.Flavour = flavour
	}
}

// WithShared returns a CommandOption that sets the SharedOptions.
func WithShared(shared *SharedOptions) CommandOption {
	return func(c *Command) {
		c.SharedOptions = shared
	}
}

// NewCommandWithOptions creates a new Command using struct-based initialization.
func NewCommandWithOptions(opts CommandOptions) *Command {
	c := NewCommand(opts.Streams)

	if opts.Shared != nil {
		c.SharedOptions = opts.Shared
	}

	c.TargetVersion = opts.TargetVersion

	if opts.Flavour != "" {
		c.Flavour = opts.Flavour
	}

	return c
}

// NewCommandWithFunctionalOptions creates a new Command using functional options.
func NewCommandWithFunctionalOptions(options ...CommandOption) *Command {
	c := NewCommand(genericiooptions.IOStreams{})

	for _, opt := range options {
		opt(c)
	}

	return c
}

// ReportTableRow represents a single row for table output.
// Each report emitted by a check is one row; a check without reports is
// shown as a single row carrying its condition message.
type ReportTableRow struct {
	Status   string
	Group    string
	Check    string
	Severity string
	Title    string
	Groups   []report.Group
}

// FlattenResults converts a map of results by group to a flat sorted array.
// Results are sorted by:
// 1. Group (canonical order: platform, application)
// 2. Kind (alphabetically within each group)
// 3. Name (alphabetically within each kind).
func FlattenResults(resultsByGroup map[check.CheckGroup][]check.CheckExecution) []check.CheckExecution {
	flattened := make([]check.CheckExecution, 0)

	for _, group := range check.CanonicalGroupOrder {
		groupResults := resultsByGroup[group]

		sort.SliceStable(groupResults, func(i, j int) bool {
			if groupResults[i].Result.Kind != groupResults[j].Result.Kind {
				return groupResults[i].Result.Kind < groupResults[j].Result.Kind
			}

			return groupResults[i].Result.Name < groupResults[j].Result.Name
		})

		flattened = append(flattened, groupResults...)
	}

	return flattened
}

// NewResultList wraps executed results into a DiagnosticResultList.
func NewResultList(results []check.CheckExecution, targetVersion string, flavour string, architecture string) *result.DiagnosticResultList {
	list := result.NewDiagnosticResultList(targetVersion, flavour, architecture)

	for _, exec := range results {
		list.Results = append(list.Results, exec.Result)
	}

	return list
}

func statusString(dr *result.DiagnosticResult) string {
	switch dr.GetImpact() {
	case result.ImpactBlocking:
		return statusFail
	case result.ImpactAdvisory:
		return statusWarn
	case result.ImpactNone:
		return statusPass
	}

	return statusPass
}

func severityString(s report.Severity) string {
	switch s {
	case report.SeverityHigh:
		return severityHigh
	case report.SeverityMedium:
		return severityMedium
	case report.SeverityLow:
		return severityLow
	case report.SeverityInfo:
		return severityInfo
	}

	return string(s)
}

// highlightInhibitor colors the inhibitor group in a joined group list.
func highlightInhibitor(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	return strings.ReplaceAll(s, string(report.GroupInhibitor), groupInhibitor)
}

// reportStatus marks inhibiting reports as failures regardless of the
// overall check status.
func reportStatus(r *report.Report) string {
	if r.IsInhibitor() {
		return statusFail
	}

	if r.Severity == report.SeverityInfo {
		return statusPass
	}

	return statusWarn
}

// TableOutputOptions controls optional sections of the table output.
type TableOutputOptions struct {
	// ShowReportDetails prints report summaries, remediation hints and links after the table.
	ShowReportDetails bool

	// TerminalWidth is the width of the output terminal, 0 when not writing to one.
	TerminalWidth int
}

// fixedColumnsWidth approximates the columns of a row other than TITLE.
const fixedColumnsWidth = 60

// OutputTable outputs check results in table format, one row per report.
func OutputTable(out io.Writer, results []check.CheckExecution, opts TableOutputOptions) error {
	totalChecks := 0
	totalPassed := 0
	totalWarnings := 0
	totalFailed := 0
	totalReports := 0
	totalInhibitors := 0

	rendererOpts := []table.Option[ReportTableRow]{
		table.WithWriter[ReportTableRow](out),
		table.WithHeaders[ReportTableRow](tableHeaders...),
		table.WithFormatter[ReportTableRow]("GROUPS", table.ChainFormatters(
			table.JQFormatter(`. // [] | join(", ")`),
			highlightInhibitor,
		)),
		table.WithTableOptions[ReportTableRow](table.DefaultTableOptions...),
	}

	if opts.TerminalWidth > 0 {
		width := min(opts.TerminalWidth-fixedColumnsWidth, table.DefaultMaxRowWidth)
		rendererOpts = append(rendererOpts, table.WithMaxRowWidth[ReportTableRow](width))
	}

	renderer := table.NewRenderer[ReportTableRow](rendererOpts...)

	for _, exec := range results {
		dr := exec.Result
		totalChecks++

		switch dr.GetImpact() {
		case result.ImpactBlocking:
			totalFailed++
		case result.ImpactAdvisory:
			totalWarnings++
		case result.ImpactNone:
			totalPassed++
		}

		if len(dr.Reports) == 0 {
			row := ReportTableRow{
				Status:   statusString(dr),
				Group:    dr.Group,
				Check:    dr.Kind,
				Severity: "-",
				Title:    dr.GetMessage(),
			}

			if err := renderer.Append(row); err != nil {
				return fmt.Errorf("appending table row: %w", err)
			}

			continue
		}

		for i := range dr.Reports {
			r := &dr.Reports[i]
			totalReports++

			if r.IsInhibitor() {
				totalInhibitors++
			}

			row := ReportTableRow{
				Status:   reportStatus(r),
				Group:    dr.Group,
				Check:    dr.Kind,
				Severity: severityString(r.Severity),
				Title:    r.Title,
				Groups:   r.Groups,
			}

			if err := renderer.Append(row); err != nil {
				return fmt.Errorf("appending table row: %w", err)
			}
		}
	}

	if err := renderer.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if opts.ShowReportDetails {
		outputReportDetails(out, results)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Summary:")
	_, _ = fmt.Fprintf(out, "  Checks: %d | Passed: %d | Warnings: %d | Failed: %d\n", totalChecks, totalPassed, totalWarnings, totalFailed)
	_, _ = fmt.Fprintf(out, "  Reports: %d | Inhibitors: %d\n", totalReports, totalInhibitors)

	return nil
}

// outputReportDetails prints the full content of every report.
func outputReportDetails(out io.Writer, results []check.CheckExecution) {
	for _, exec := range results {
		for i := range exec.Result.Reports {
			r := &exec.Result.Reports[i]

			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintf(out, "[%s] %s\n", severityString(r.Severity), r.Title)

			for line := range strings.SplitSeq(r.Summary, "\n") {
				_, _ = fmt.Fprintf(out, "    %s\n", line)
			}

			if r.Remediation != "" {
				_, _ = fmt.Fprintf(out, "  Remediation: %s\n", r.Remediation)
			}

			for _, link := range r.ExternalLinks {
				_, _ = fmt.Fprintf(out, "  Link: %s (%s)\n", link.Title, link.URL)
			}
		}
	}
}

// OutputJSON outputs diagnostic results in List format.
func OutputJSON(out io.Writer, list *result.DiagnosticResultList) error {
	renderer := printerjson.NewRenderer[*result.DiagnosticResultList](
		printerjson.WithWriter[*result.DiagnosticResultList](out),
	)

	if err := renderer.Render(list); err != nil {
		return fmt.Errorf("rendering JSON output: %w", err)
	}

	return nil
}

// OutputYAML outputs diagnostic results in List format.
func OutputYAML(out io.Writer, list *result.DiagnosticResultList) error {
	renderer := printeryaml.NewRenderer[*result.DiagnosticResultList](
		printeryaml.WithWriter[*result.DiagnosticResultList](out),
		printeryaml.WithDocumentStart[*result.DiagnosticResultList](true),
	)

	if err := renderer.Render(list); err != nil {
		return fmt.Errorf("rendering YAML output: %w", err)
	}

	return nil
}
