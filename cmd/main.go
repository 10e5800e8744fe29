package main

import (
	"os"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/lburgazzoli/ipu-lint/cmd/lint"
	"github.com/lburgazzoli/ipu-lint/cmd/version"
)

func main() {
	streams := genericiooptions.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	cmd := &cobra.Command{
		Use:   "ipu-lint",
		Short: "Pre-upgrade checks for RHEL in-place upgrades",
	}

	version.AddCommand(cmd, streams)
	lint.AddCommand(cmd, streams)

	if err := cmd.Execute(); err != nil {
		if _, writeErr := os.Stderr.WriteString(err.Error() + "\n"); writeErr != nil {
			os.Exit(1)
		}
		os.Exit(1)
	}
}
