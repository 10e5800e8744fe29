package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lburgazzoli/ipu-lint/pkg/cmd"

	. "github.com/onsi/gomega"
)

type recordingCommand struct {
	calls       []string
	completeErr error
	validateErr error
	runErr      error
}

func (c *recordingCommand) Complete() error {
	c.calls = append(c.calls, "complete")

	return c.completeErr
}

func (c *recordingCommand) Validate() error {
	c.calls = append(c.calls, "validate")

	return c.validateErr
}

func (c *recordingCommand) Run(_ context.Context) error {
	c.calls = append(c.calls, "run")

	return c.runErr
}

func (c *recordingCommand) AddFlags(_ *pflag.FlagSet) {}

func TestExecute(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		command *recordingCommand
		calls   []string
		errMsg  string
	}{
		{
			name:    "all phases",
			command: &recordingCommand{},
			calls:   []string{"complete", "validate", "run"},
		},
		{
			name:    "complete fails",
			command: &recordingCommand{completeErr: errBoom},
			calls:   []string{"complete"},
			errMsg:  "completing command: boom",
		},
		{
			name:    "validate fails",
			command: &recordingCommand{validateErr: errBoom},
			calls:   []string{"complete", "validate"},
			errMsg:  "validating command: boom",
		},
		{
			name:    "run fails",
			command: &recordingCommand{runErr: errBoom},
			calls:   []string{"complete", "validate", "run"},
			errMsg:  "running command: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			err := cmd.Execute(t.Context(), tt.command)
			if tt.errMsg == "" {
				g.Expect(err).ToNot(HaveOccurred())
			} else {
				g.Expect(err).To(MatchError(tt.errMsg))
				g.Expect(errors.Is(err, errBoom)).To(BeTrue())
			}

			g.Expect(tt.command.calls).To(Equal(tt.calls))
		})
	}
}
