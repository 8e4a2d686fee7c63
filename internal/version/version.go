// Package version exposes build metadata stamped at link time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version of the binary
	Version = "dev"
	// GitCommit is the git commit hash the binary was built from
	GitCommit = "unknown"
	// BuildTime is when the binary was built (RFC3339)
	BuildTime = "unknown"
)

// BuildInfo contains version and build information.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the effective build information, falling back to module build
// info for binaries installed via `go install`.
func Get() BuildInfo {
	return BuildInfo{
		Version:   effectiveVersion(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func effectiveVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return Version
}

// String renders the short one-line version.
func (b BuildInfo) String() string {
	return fmt.Sprintf("driftlint %s (%s, %s)", b.Version, b.GitCommit, b.GoVersion)
}
