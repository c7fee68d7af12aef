// Package cmd holds build metadata for agentdocs, set at link time:
//
//	go build -ldflags "-X github.com/thoreinstein/agentdocs/cmd.Version=v1.2.0" ./cmd/agentdocs
package cmd

// Build-time variables set via ldflags.
var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
