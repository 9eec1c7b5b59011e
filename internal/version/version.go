// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/dolink/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dolink/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dolink/internal/version.Date={{.Date}}
)

// String renders the build information on three lines
func String() string {
	return fmt.Sprintf("dolink version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
