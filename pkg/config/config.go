package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables that override flag defaults,
	// e.g. IPU_LINT_TARGET_VERSION for --target-version.
	EnvPrefix = "IPU_LINT"

	// FlagConfig is the flag that selects the configuration file.
	FlagConfig = "config"
)

// Loader layers environment variables and an optional configuration file
// below command line flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader reading IPU_LINT_* variables and, when path is
// not empty, the configuration file at path. The file format is derived from
// the extension (yaml, json, toml).
func NewLoader(path string) (*Loader, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return &Loader{v: v}, nil
}

// Apply sets every flag not given on the command line from the environment
// or the configuration file, in that order of precedence. Flags keep their
// default when neither provides a value.
func (l *Loader) Apply(fs *pflag.FlagSet) error {
	var result *multierror.Error

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == FlagConfig {
			return
		}

		if !l.v.IsSet(f.Name) {
			return
		}

		if err := fs.Set(f.Name, l.value(f)); err != nil {
			result = multierror.Append(result, fmt.Errorf("applying %s: %w", f.Name, err))
		}
	})

	return result.ErrorOrNil()
}

func (l *Loader) value(f *pflag.Flag) string {
	switch f.Value.Type() {
	case "stringSlice", "stringArray":
		return strings.Join(l.v.GetStringSlice(f.Name), ",")
	default:
		return l.v.GetString(f.Name)
	}
}

// Apply is a shorthand for NewLoader followed by Loader.Apply.
func Apply(fs *pflag.FlagSet, path string) error {
	l, err := NewLoader(path)
	if err != nil {
		return err
	}

	return l.Apply(fs)
}
