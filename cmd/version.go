package cmd

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X github.com/jacricelli/mdf4-converters/cmd.Version=...".
var (
	Version           = "dev"
	Commit            = "none"
	BuildTime         = "unknown"
	MDFLibraryVersion = "unknown"
)

func versionText() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

func printVersion(w io.Writer, program, converterVersion string) {
	fmt.Fprintf(w, "Version of %s: %s\n", program, converterVersion)
	fmt.Fprintf(w, "Version of converter base: %s\n", versionText())
	fmt.Fprintf(w, "Version of MDF library: %s\n", MDFLibraryVersion)
}
