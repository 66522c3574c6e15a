// Package version reports build information for resswitch
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via -ldflags "-X github.com/iiroan/resswitch/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information for a build
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Get returns the build information, filling unset ldflags values from the
// module build info when available.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return info.withBuildInfo(bi)
}

func (v Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if v.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if v.Commit == "unknown" {
				v.Commit = ShortCommit(s.Value)
			}
		case "vcs.time":
			if v.BuildDate == "unknown" {
				v.BuildDate = s.Value
			}
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}
	return v
}

// ShortCommit trims a revision hash to 7 characters
func ShortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

// String returns the one-line version string
func (v Info) String() string {
	s := fmt.Sprintf("resswitch %s (%s)", v.Version, v.Commit)
	if v.Dirty {
		s += "-dirty"
	}
	return s
}

// JSON returns the info as indented JSON
func (v Info) JSON() ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
