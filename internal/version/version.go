// Package version reports how the binary was built and which tag table it
// embeds.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/conneroisu/tagdata/internal/builtins"
)

// Stamped with -ldflags "-X github.com/conneroisu/tagdata/internal/version.Version=v1.0.0".
// BuildTime is RFC3339.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const unknown = "unknown"

// Info describes the running binary and its embedded tag table.
type Info struct {
	Version     string    `json:"version"`
	Commit      string    `json:"git_commit"`
	Built       time.Time `json:"build_time"`
	GoVersion   string    `json:"go_version"`
	Platform    string    `json:"platform"`
	Release     bool      `json:"is_release"`
	Dirty       bool      `json:"is_dirty"`
	DataVersion float64   `json:"data_version"`
	BuiltinTags int       `json:"builtin_tags"`
}

// Get collects Info. Values missing from the ldflags stamp fall back to the
// module version and VCS settings recorded by the go tool.
func Get() Info {
	mainVersion, vcs := readBuild()
	table := builtins.Registry()

	info := Info{
		Version:     Version,
		Commit:      GitCommit,
		Built:       parseBuildTime(BuildTime),
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Dirty:       vcs["vcs.modified"] == "true",
		DataVersion: table.Version(),
		BuiltinTags: table.Len(),
	}

	if info.Commit == "" || info.Commit == unknown {
		info.Commit = unknown
		if rev := vcs["vcs.revision"]; rev != "" {
			info.Commit = rev
		}
	}

	if info.Version == "" || info.Version == "dev" {
		switch {
		case mainVersion != "" && mainVersion != "(devel)":
			info.Version = mainVersion
		case len(info.Commit) >= 7 && info.Commit != unknown:
			info.Version = "dev-" + info.Commit[:7]
		default:
			info.Version = "dev"
		}
	}
	info.Release = info.Version != "dev" && !strings.HasPrefix(info.Version, "dev-")

	return info
}

// Short is the one line form: the version, followed by the abbreviated
// commit for release builds.
func (i Info) Short() string {
	if !i.Release || len(i.Commit) < 7 || i.Commit == unknown {
		return i.Version
	}

	return i.Version + " (" + i.Commit[:7] + ")"
}

func readBuild() (string, map[string]string) {
	settings := make(map[string]string)

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", settings
	}
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	return bi.Main.Version, settings
}

var buildTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseBuildTime returns the zero time for an empty or unparsable stamp.
func parseBuildTime(s string) time.Time {
	for _, layout := range buildTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
