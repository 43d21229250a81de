package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionText(t *testing.T) {
	oldVersion, oldCommit, oldBuildTime := Version, Commit, BuildTime
	defer func() {
		Version, Commit, BuildTime = oldVersion, oldCommit, oldBuildTime
	}()

	Version = "v1.2.3"
	Commit = "abc1234"
	BuildTime = "2026-02-23T10:00:00Z"

	require.Equal(t, "v1.2.3 (commit: abc1234, built: 2026-02-23T10:00:00Z)", versionText())
}

func TestPrintVersion(t *testing.T) {
	oldVersion, oldCommit, oldBuildTime, oldLib := Version, Commit, BuildTime, MDFLibraryVersion
	defer func() {
		Version, Commit, BuildTime, MDFLibraryVersion = oldVersion, oldCommit, oldBuildTime, oldLib
	}()

	Version = "v9.9.9"
	Commit = "def5678"
	BuildTime = "2026-02-23T11:00:00Z"
	MDFLibraryVersion = "2.1.0"

	buf := bytes.NewBuffer(nil)
	printVersion(buf, "mdf2csv", "3.0.1")
	require.Equal(t, "Version of mdf2csv: 3.0.1\n"+
		"Version of converter base: v9.9.9 (commit: def5678, built: 2026-02-23T11:00:00Z)\n"+
		"Version of MDF library: 2.1.0\n", buf.String())
}
