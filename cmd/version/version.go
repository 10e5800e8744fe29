package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/lburgazzoli/ipu-lint/pkg/printer"
	printerjson "github.com/lburgazzoli/ipu-lint/pkg/printer/json"
	printeryaml "github.com/lburgazzoli/ipu-lint/pkg/printer/yaml"
	"github.com/lburgazzoli/ipu-lint/pkg/version"
)

const (
	cmdName  = "version"
	cmdShort = "Print the ipu-lint version"
)

// AddCommand adds the version command to the root command.
func AddCommand(root *cobra.Command, streams genericiooptions.IOStreams) {
	output := printer.Table

	cmd := &cobra.Command{
		Use:          cmdName,
		Short:        cmdShort,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()

			switch output {
			case printer.JSON:
				return printerjson.NewRenderer[version.Info](printerjson.WithWriter[version.Info](streams.Out)).Render(info)
			case printer.YAML:
				return printeryaml.NewRenderer[version.Info](printeryaml.WithWriter[version.Info](streams.Out)).Render(info)
			case printer.Table:
			}

			_, err := fmt.Fprintf(streams.Out, "ipu-lint %s (commit %s, %s, %s)\n", info.Version, info.Commit, info.GoVersion, info.Platform)

			return err
		},
	}

	cmd.Flags().VarP(&output, "output", "o", "output format (table|json|yaml)")

	root.AddCommand(cmd)
}
