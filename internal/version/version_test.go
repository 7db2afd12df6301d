package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionFromLdflags(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v0.2.0"
	assert.Equal(t, "v0.2.0", GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version = "v0.2.0"
	GitCommit = "deadbeef"
	assert.Equal(t, "v0.2.0 (commit: deadbeef)", GetFullVersion())

	GitCommit = "unknown"
	assert.Equal(t, "v0.2.0", GetFullVersion())
}
