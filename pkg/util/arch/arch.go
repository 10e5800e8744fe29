package arch

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/containerd/platforms"
)

// Architecture names as reported by uname -m on RHEL.
const (
	X86_64  = "x86_64"
	AArch64 = "aarch64"
	PPC64LE = "ppc64le"
	S390X   = "s390x"
)

// unameNames maps normalized OCI architecture names back to uname names.
//
//nolint:gochecknoglobals
var unameNames = map[string]string{
	"amd64": X86_64,
	"arm64": AArch64,
}

// Host is the architecture of the machine being upgraded.
type Host struct {
	normalized string
}

// NewHost creates a Host for the given architecture name. An empty name
// selects the architecture of the running binary.
func NewHost(name string) (*Host, error) {
	if name == "" {
		name = runtime.GOARCH
	}

	normalized, err := Normalize(name)
	if err != nil {
		return nil, err
	}

	return &Host{normalized: normalized}, nil
}

// Normalize converts uname style names (x86_64, aarch64) and Go/OCI names
// (amd64, arm64) to the OCI form.
func Normalize(name string) (string, error) {
	p, err := platforms.Parse("linux/" + name)
	if err != nil {
		return "", fmt.Errorf("invalid architecture %q: %w", name, err)
	}

	return p.Architecture, nil
}

// Name returns the host architecture using uname naming.
func (h *Host) Name() string {
	if name, ok := unameNames[h.normalized]; ok {
		return name
	}

	return h.normalized
}

// MatchesArchitecture reports whether the host is one of names.
func (h *Host) MatchesArchitecture(names ...string) bool {
	return slices.ContainsFunc(names, func(name string) bool {
		normalized, err := Normalize(name)

		return err == nil && normalized == h.normalized
	})
}
