package version

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withStamp(t *testing.T, version, commit, buildTime string) {
	t.Helper()

	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime
	})
	Version, GitCommit, BuildTime = version, commit, buildTime
}

func TestGet_Stamped(t *testing.T) {
	withStamp(t, "v1.2.0", "0123456789abcdef", "2026-03-01T10:00:00Z")

	info := Get()
	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "0123456789abcdef", info.Commit)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), info.Built)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.True(t, info.Release)

	assert.Equal(t, "v1.2.0 (0123456)", info.Short())
}

func TestGet_Unstamped(t *testing.T) {
	withStamp(t, "dev", "unknown", "unknown")

	info := Get()
	v := info.Version
	assert.True(t, v == "dev" || strings.HasPrefix(v, "dev-") || strings.HasPrefix(v, "v"), v)
	assert.Equal(t, !strings.HasPrefix(v, "dev"), info.Release)
	assert.True(t, info.Built.IsZero())
	assert.NotEmpty(t, info.Commit)
}

func TestGet_DataTable(t *testing.T) {
	info := Get()
	assert.Equal(t, 1.1, info.DataVersion)
	assert.Equal(t, 8, info.BuiltinTags)
}

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"release", Info{Version: "v0.3.0", Commit: "abcdef0123", Release: true}, "v0.3.0 (abcdef0)"},
		{"release without commit", Info{Version: "v0.3.0", Commit: "unknown", Release: true}, "v0.3.0"},
		{"short commit", Info{Version: "v0.3.0", Commit: "abc", Release: true}, "v0.3.0"},
		{"dev build", Info{Version: "dev-abcdef0", Commit: "abcdef0123"}, "dev-abcdef0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestParseBuildTime(t *testing.T) {
	tests := []struct {
		input string
		zero  bool
	}{
		{"2026-03-01T10:00:00Z", false},
		{"2026-03-01T10:00:00", false},
		{"2026-03-01 10:00:00", false},
		{"yesterday", true},
		{"unknown", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.zero, parseBuildTime(tt.input).IsZero())
		})
	}
}
