// Package version reports the build's version string.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Set at build time via ldflags.
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// GetVersion returns the release version, preferring the ldflags value
// and falling back to module build info.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// GetFullVersion returns the version with the commit hash appended when
// one was baked in.
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", v, GitCommit)
	}
	return v
}
