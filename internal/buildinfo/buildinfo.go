// Package buildinfo carries version metadata injected at build time.
package buildinfo

// These values are injected via ldflags for release binaries.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// String returns a human-readable version line.
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	out := "trellis " + v
	if Commit != "" {
		out += " (" + Commit + ")"
	}
	if Date != "" {
		out += " built " + Date
	}
	return out
}
