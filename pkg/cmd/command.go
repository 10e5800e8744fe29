package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

// Command is implemented by every ipu-lint subcommand.
//
// A command runs in three phases, always in this order:
//  1. Complete resolves flag values into the objects Run needs
//  2. Validate rejects inconsistent or missing input
//  3. Run does the work
//
// Flags are registered through AddFlags so commands can be exercised in tests
// without a cobra.Command.
type Command interface {
	// Complete resolves flag values, e.g. parses the target release or opens the
	// facts document.
	Complete() error

	// Validate checks the completed command. It must not perform I/O.
	Validate() error

	// Run executes the command.
	Run(ctx context.Context) error

	// AddFlags registers the command flags on fs.
	AddFlags(fs *pflag.FlagSet)
}

// Execute runs the three phases of c, stopping at the first failure.
func Execute(ctx context.Context, c Command) error {
	if err := c.Complete(); err != nil {
		return fmt.Errorf("completing command: %w", err)
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("validating command: %w", err)
	}

	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("running command: %w", err)
	}

	return nil
}
