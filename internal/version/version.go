// Package version holds build metadata injected via ldflags.
package version

var (
	// Version is the release version, set at build time.
	Version = "dev"

	// CommitSHA is the git commit the binary was built from.
	CommitSHA = "unknown"

	// BuildDate is the UTC build timestamp.
	BuildDate = "unknown"
)
