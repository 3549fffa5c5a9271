// Package version holds build metadata, set through -ldflags -X.
package version

var (
	// Version is the release version.
	Version = "dev"
	// CommitSHA is the git commit the binary was built from.
	CommitSHA = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
