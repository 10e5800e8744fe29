package answers

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lburgazzoli/ipu-lint/pkg/util/terminal"
)

// Prompter asks questions interactively on the terminal.
// Without a terminal every question stays unanswered.
type Prompter struct {
	isTerminal func() bool
	runForm    func(ctx context.Context, form *huh.Form) error
}

// NewPrompter creates a Prompter bound to the process terminal.
func NewPrompter() *Prompter {
	return &Prompter{
		isTerminal: terminal.IsInteractive,
		runForm: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}
}

// Answer implements Provider.
func (p *Prompter) Answer(ctx context.Context, q Question) (bool, error) {
	if p.isTerminal == nil || !p.isTerminal() {
		return false, ErrUnanswered
	}

	var confirmed bool

	fields := make([]huh.Field, 0, 2)
	if q.Reason != "" {
		fields = append(fields, huh.NewNote().Title("Confirmation").Description(q.Reason))
	}
	fields = append(fields, huh.NewConfirm().
		Title(q.Label).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed))

	form := huh.NewForm(huh.NewGroup(fields...))
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := p.runForm(ctx, form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, ErrUnanswered
	}
	if err != nil {
		return false, fmt.Errorf("prompting for %s: %w", q, err)
	}

	return confirmed, nil
}
