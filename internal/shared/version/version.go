// Package version carries the build identity stamped in at link time.
package version

var (
	// Version is the release version, set via -ldflags at build time.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = ""
)

// String returns a human-readable version string.
func String() string {
	if Commit != "" {
		return Version + " (" + Commit + ")"
	}
	return Version
}
