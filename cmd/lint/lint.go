package lint

import (
	"fmt"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	pkgcmd "github.com/lburgazzoli/ipu-lint/pkg/cmd"
	"github.com/lburgazzoli/ipu-lint/pkg/config"
	lintpkg "github.com/lburgazzoli/ipu-lint/pkg/lint"
)

const (
	cmdName  = "lint"
	cmdShort = "Assess whether the system can be upgraded in place to a target RHEL release"
)

const cmdLong = `
Assesses whether the system can be upgraded in place to the target RHEL release.

Checks run in two groups:
  - Platform: the facts collected on the system are readable and well formed
  - Application: installed applications support the target release (SAP HANA)

Checks emit reports. A report in the inhibitor group blocks the upgrade;
every report carries a severity, a summary, and where available a remediation
hint and links to further documentation.

Flag values can also be given through IPU_LINT_* environment variables
(e.g. IPU_LINT_TARGET_VERSION) or a configuration file passed with --config.
Flags given on the command line take precedence.
`

const cmdExample = `
  # Assess the upgrade to RHEL 8.10
  ipu-lint lint --target-version 8.10

  # Assess an SAP HANA system using collected facts
  ipu-lint lint --target-version 9.2 --flavour saphana --facts facts.yaml

  # Confirm the SAP HANA version through an answer file
  ipu-lint lint --target-version 9.2 --flavour saphana --facts facts.yaml --answer-file answers.toml

  # Output results in JSON format
  ipu-lint lint --target-version 8.10 -o json

  # Run only SAP HANA checks
  ipu-lint lint --target-version 8.10 --flavour saphana --checks "*saphana*"
`

// AddCommand adds the lint command to the root command.
func AddCommand(root *cobra.Command, streams genericiooptions.IOStreams) {
	command := lintpkg.NewCommand(streams)

	cmd := &cobra.Command{
		Use:           cmdName,
		Short:         cmdShort,
		Long:          cmdLong,
		Example:       cmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Environment and config file values fill flags not given on the command line
			if err := config.Apply(cmd.Flags(), command.ConfigFile); err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			if err := pkgcmd.Execute(cmd.Context(), command); err != nil {
				if command.Verbose {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}

				return err
			}

			return nil
		},
	}

	command.AddFlags(cmd.Flags())

	root.AddCommand(cmd)
}
