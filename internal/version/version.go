// Package version exposes build metadata injected by the linker.
package version

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns a human-readable single-line version description.
func String() string {
	return Version + " (" + CommitHash + ", " + BuildDate + ")"
}
