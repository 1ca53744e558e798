// Package cmd holds build metadata injected at link time.
package cmd

// Set via -ldflags "-X github.com/thoreinstein/cfgctl/cmd.Version=..."
// and friends by the release build.
var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
