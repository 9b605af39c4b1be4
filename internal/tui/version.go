package tui

import "fmt"

// Set at build time with -ldflags "-X github.com/akyairhashvil/zenith/internal/tui.AppVersion=...".
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel is the version string shown in the header and by `zenith version`.
func VersionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
