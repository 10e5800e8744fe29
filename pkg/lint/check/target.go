package check

import (
	"github.com/sirupsen/logrus"

	"github.com/lburgazzoli/ipu-lint/pkg/facts"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
	"github.com/lburgazzoli/ipu-lint/pkg/util/arch"
	"github.com/lburgazzoli/ipu-lint/pkg/util/iostreams"
	"github.com/lburgazzoli/ipu-lint/pkg/util/version"
)

// Target holds all context needed for executing diagnostic checks.
type Target struct {
	// Flavour is the upgrade flavour (e.g., "default", "saphana").
	Flavour string

	// Version is the release being upgraded to.
	Version *version.Target

	// Arch is the architecture of the system being upgraded.
	Arch *arch.Host

	// Facts provides the facts collected on the system.
	Facts facts.Source

	// Answers answers questions checks need confirmed by the user (optional).
	// A nil provider leaves every question unanswered.
	Answers answers.Provider

	// Log receives diagnostic logs from checks (optional).
	Log logrus.FieldLogger

	// IO provides access to input/output streams for progress messages (optional).
	// If nil, checks should skip user-facing output.
	IO iostreams.Interface

	// Debug enables detailed diagnostic logging for troubleshooting.
	Debug bool
}
