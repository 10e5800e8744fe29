package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/lburgazzoli/ipu-lint/pkg/version.version=...".
//
//nolint:gochecknoglobals
var (
	version = ""
	commit  = ""
)

const unknown = "unknown"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Commit    string `json:"commit"    yaml:"commit"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the build information. Values not injected at build time are
// read from the module build info.
func Get() Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			if info.Commit == "" && s.Key == "vcs.revision" {
				info.Commit = s.Value
			}
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}

	if info.Commit == "" {
		info.Commit = unknown
	}

	return info
}
