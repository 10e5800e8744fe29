package lint

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/lburgazzoli/ipu-lint/pkg/cmd"
	"github.com/lburgazzoli/ipu-lint/pkg/config"
	"github.com/lburgazzoli/ipu-lint/pkg/facts"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/checks/application/saphana"
	checkfacts "github.com/lburgazzoli/ipu-lint/pkg/lint/checks/platform/facts"
	"github.com/lburgazzoli/ipu-lint/pkg/report"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
	"github.com/lburgazzoli/ipu-lint/pkg/util/arch"
	"github.com/lburgazzoli/ipu-lint/pkg/util/terminal"
	"github.com/lburgazzoli/ipu-lint/pkg/util/version"
)

// Verify Command implements cmd.Command interface at compile time.
var _ cmd.Command = (*Command)(nil)

// Command contains the lint command configuration.
type Command struct {
	*SharedOptions

	// TargetVersion is the release the system is upgraded to.
	TargetVersion string

	// Flavour is the upgrade flavour (default, saphana).
	Flavour string

	// Arch overrides the architecture of the upgraded system.
	Arch string

	// FactsFile is the facts document collected on the system.
	FactsFile string

	// AnswerFile holds confirmations given ahead of time.
	AnswerFile string

	// Interactive asks unanswered confirmations on the terminal.
	Interactive bool

	// parsed state, populated during Complete
	target  *version.Target
	host    *arch.Host
	facts   facts.Source
	answers answers.Provider

	// registry is the check registry for this command instance.
	// Explicitly populated to avoid global state and enable test isolation.
	registry *check.CheckRegistry
}

// NewCommand creates a new Command with defaults.
func NewCommand(streams genericiooptions.IOStreams) *Command {
	registry := check.NewRegistry()

	// Platform
	registry.MustRegister(checkfacts.NewAvailabilityCheck())

	// Application
	registry.MustRegister(saphana.NewCompatibilityCheck())

	return &Command{
		SharedOptions: NewSharedOptions(streams),
		Flavour:       FlavourDefault,
		registry:      registry,
	}
}

// Registry returns the checks this command runs.
func (c *Command) Registry() *check.CheckRegistry {
	return c.registry
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *Command) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.TargetVersion, "target-version", c.TargetVersion, flagDescTargetVersion)
	fs.StringVar(&c.Flavour, "flavour", c.Flavour, flagDescFlavour)
	fs.StringVar(&c.Arch, "arch", c.Arch, flagDescArch)
	fs.StringVar(&c.FactsFile, "facts", c.FactsFile, flagDescFacts)
	fs.StringVar(&c.AnswerFile, "answer-file", c.AnswerFile, flagDescAnswerFile)
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, flagDescInteractive)
	fs.StringVarP((*string)(&c.OutputFormat), "output", "o", string(c.OutputFormat), flagDescOutput)
	fs.StringSliceVar(&c.CheckSelectors, "checks", c.CheckSelectors, flagDescChecks)
	fs.BoolVar(&c.FailOnInhibitor, "fail-on-inhibitor", c.FailOnInhibitor, flagDescFailInhibitor)
	fs.BoolVar(&c.FailOnAdvisory, "fail-on-advisory", c.FailOnAdvisory, flagDescFailAdvisory)
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, flagDescVerbose)
	fs.BoolVar(&c.Debug, "debug", c.Debug, flagDescDebug)
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, flagDescTimeout)
	fs.StringVar(&c.ConfigFile, config.FlagConfig, c.ConfigFile, flagDescConfig)
}

// Complete populates Options and performs pre-validation setup.
func (c *Command) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return fmt.Errorf("completing shared options: %w", err)
	}

	if c.TargetVersion != "" {
		target, err := version.NewTarget(c.TargetVersion)
		if err != nil {
			return fmt.Errorf("invalid target version %q: %w", c.TargetVersion, err)
		}

		c.target = target
	}

	host, err := arch.NewHost(c.Arch)
	if err != nil {
		return fmt.Errorf("resolving architecture: %w", err)
	}

	c.host = host

	if c.FactsFile != "" {
		c.facts = facts.NewFileSource(c.FactsFile)
	}

	var chain answers.Chain

	if c.AnswerFile != "" {
		store, err := answers.LoadFileStore(c.AnswerFile)
		if err != nil {
			return fmt.Errorf("loading answers: %w", err)
		}

		chain = append(chain, store)
	}

	if c.Interactive {
		chain = append(chain, answers.NewPrompter())
	}

	c.answers = chain

	return nil
}

// Validate checks that all required options are valid.
func (c *Command) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return fmt.Errorf("validating shared options: %w", err)
	}

	if c.TargetVersion == "" {
		return errors.New("--target-version is required")
	}

	switch c.Flavour {
	case FlavourDefault, FlavourSAPHana:
	default:
		return fmt.Errorf("invalid flavour %q (must be one of: %s, %s)", c.Flavour, FlavourDefault, FlavourSAPHana)
	}

	return nil
}

// Run executes the checks and prints their results.
func (c *Command) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	c.IO.Errorf("Target release: %s (%s)", c.target, c.host.Name())
	c.IO.Errorf("Upgrade flavour: %s", c.Flavour)

	if c.facts == nil {
		c.IO.Errorf("No facts document given, system specific checks will be skipped")
	}

	target := check.Target{
		Flavour: c.Flavour,
		Version: c.target,
		Arch:    c.host,
		Facts:   c.facts,
		Answers: c.answers,
		Log:     c.Log,
		IO:      c.IO,
		Debug:   c.Debug,
	}

	resultsByGroup, err := c.execute(ctx, target)
	if err != nil {
		return err
	}

	if err := c.formatAndOutputResults(resultsByGroup); err != nil {
		return err
	}

	return c.determineExitCode(resultsByGroup)
}

// execute runs the selected checks group by group in canonical order.
func (c *Command) execute(ctx context.Context, target check.Target) (map[check.CheckGroup][]check.CheckExecution, error) {
	executor := check.NewExecutor(c.IO)
	resultsByGroup := make(map[check.CheckGroup][]check.CheckExecution)

	for _, group := range check.CanonicalGroupOrder {
		selected, err := c.registry.ListByPatterns(c.CheckSelectors, group)
		if err != nil {
			return nil, fmt.Errorf("selecting %s checks: %w", group, err)
		}

		if len(selected) == 0 {
			continue
		}

		c.IO.Errorf("Running %s checks...", group)

		resultsByGroup[group] = executor.Execute(ctx, target, selected)
	}

	if err := check.CheckContextError(ctx); err != nil {
		return nil, fmt.Errorf("running checks: %w", err)
	}

	return resultsByGroup, nil
}

// determineExitCode returns an error if fail-on conditions are met.
func (c *Command) determineExitCode(resultsByGroup map[check.CheckGroup][]check.CheckExecution) error {
	var hasInhibitor, hasAdvisory bool

	for _, results := range resultsByGroup {
		for _, exec := range results {
			//nolint:revive // exhaustive linter requires explicit None case
			switch exec.Result.GetImpact() {
			case result.ImpactBlocking:
				hasInhibitor = true
			case result.ImpactAdvisory:
				hasAdvisory = true
			case result.ImpactNone:
			}

			if slices.ContainsFunc(exec.Result.Reports, func(r report.Report) bool { return r.IsInhibitor() }) {
				hasInhibitor = true
			}
		}
	}

	if c.FailOnInhibitor && hasInhibitor {
		return errors.New("inhibiting findings detected")
	}

	if c.FailOnAdvisory && hasAdvisory {
		return errors.New("advisory findings detected")
	}

	return nil
}

// formatAndOutputResults formats and outputs check results based on the output format.
func (c *Command) formatAndOutputResults(resultsByGroup map[check.CheckGroup][]check.CheckExecution) error {
	flatResults := FlattenResults(resultsByGroup)

	switch c.OutputFormat {
	case OutputFormatTable:
		return c.outputTable(flatResults)
	case OutputFormatJSON:
		if err := OutputJSON(c.IO.Writer(), c.resultList(flatResults)); err != nil {
			return fmt.Errorf("outputting JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		if err := OutputYAML(c.IO.Writer(), c.resultList(flatResults)); err != nil {
			return fmt.Errorf("outputting YAML: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", c.OutputFormat)
	}
}

func (c *Command) resultList(results []check.CheckExecution) *result.DiagnosticResultList {
	return NewResultList(results, c.target.String(), c.Flavour, c.host.Name())
}

// outputTable outputs results in table format.
func (c *Command) outputTable(results []check.CheckExecution) error {
	c.IO.Fprintln()
	c.IO.Fprintf("UPGRADE READINESS: RHEL %s (%s, %s)", c.target, c.Flavour, c.host.Name())
	c.IO.Fprintln("=============================================================")

	opts := TableOutputOptions{ShowReportDetails: c.Verbose}
	if width, ok := terminal.Width(c.IO.Writer()); ok {
		opts.TerminalWidth = width
	}

	if err := OutputTable(c.IO.Writer(), results, opts); err != nil {
		return fmt.Errorf("outputting table: %w", err)
	}

	return nil
}
