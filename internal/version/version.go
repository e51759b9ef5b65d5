package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/eolmix/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/eolmix/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/eolmix/internal/version.Date={{.Date}}
)

// String is the multi-line form printed by `eolmix version`
func String() string {
	return fmt.Sprintf("eolmix version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
