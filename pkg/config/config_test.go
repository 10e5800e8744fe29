package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/lburgazzoli/ipu-lint/pkg/config"

	. "github.com/onsi/gomega"
)

type options struct {
	target      string
	flavour     string
	interactive bool
	timeout     time.Duration
	checks      []string
}

func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&o.target, "target-version", "", "")
	fs.StringVar(&o.flavour, "flavour", "default", "")
	fs.BoolVar(&o.interactive, "interactive", false, "")
	fs.DurationVar(&o.timeout, "timeout", time.Minute, "")
	fs.StringSliceVar(&o.checks, "checks", []string{"*"}, "")
	fs.String(config.FlagConfig, "", "")

	return fs
}

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestApply_Defaults(t *testing.T) {
	g := NewWithT(t)

	var o options
	fs := newFlagSet(&o)
	g.Expect(fs.Parse(nil)).To(Succeed())

	g.Expect(config.Apply(fs, "")).To(Succeed())

	g.Expect(o.flavour).To(Equal("default"))
	g.Expect(o.timeout).To(Equal(time.Minute))
	g.Expect(o.checks).To(Equal([]string{"*"}))
}

func TestApply_ConfigFile(t *testing.T) {
	g := NewWithT(t)

	path := writeConfig(t, "ipu-lint.yaml", `
target-version: "8.10"
flavour: saphana
interactive: true
timeout: 30s
checks:
  - application.*
  - platform.*
`)

	var o options
	fs := newFlagSet(&o)
	g.Expect(fs.Parse(nil)).To(Succeed())

	g.Expect(config.Apply(fs, path)).To(Succeed())

	g.Expect(o.target).To(Equal("8.10"))
	g.Expect(o.flavour).To(Equal("saphana"))
	g.Expect(o.interactive).To(BeTrue())
	g.Expect(o.timeout).To(Equal(30 * time.Second))
	g.Expect(o.checks).To(Equal([]string{"application.*", "platform.*"}))
}

func TestApply_TOMLConfigFile(t *testing.T) {
	g := NewWithT(t)

	path := writeConfig(t, "ipu-lint.toml", "target-version = \"9.2\"\nflavour = \"saphana\"\n")

	var o options
	fs := newFlagSet(&o)
	g.Expect(fs.Parse(nil)).To(Succeed())

	g.Expect(config.Apply(fs, path)).To(Succeed())

	g.Expect(o.target).To(Equal("9.2"))
	g.Expect(o.flavour).To(Equal("saphana"))
}

func TestApply_Precedence(t *testing.T) {
	g := NewWithT(t)

	path := writeConfig(t, "ipu-lint.yaml", "target-version: \"8.6\"\nflavour: saphana\ntimeout: 30s\n")

	t.Setenv("IPU_LINT_TARGET_VERSION", "8.8")
	t.Setenv("IPU_LINT_TIMEOUT", "2m")

	var o options
	fs := newFlagSet(&o)
	g.Expect(fs.Parse([]string{"--timeout", "5m"})).To(Succeed())

	g.Expect(config.Apply(fs, path)).To(Succeed())

	// env beats the file, the command line beats both
	g.Expect(o.target).To(Equal("8.8"))
	g.Expect(o.flavour).To(Equal("saphana"))
	g.Expect(o.timeout).To(Equal(5 * time.Minute))
}

func TestApply_InvalidValue(t *testing.T) {
	g := NewWithT(t)

	t.Setenv("IPU_LINT_TIMEOUT", "soon")

	var o options
	fs := newFlagSet(&o)
	g.Expect(fs.Parse(nil)).To(Succeed())

	err := config.Apply(fs, "")

	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("applying timeout"))
}

func TestNewLoader_MissingFile(t *testing.T) {
	g := NewWithT(t)

	_, err := config.NewLoader(filepath.Join(t.TempDir(), "missing.yaml"))

	g.Expect(err).To(MatchError(ContainSubstring("reading config file")))
}
