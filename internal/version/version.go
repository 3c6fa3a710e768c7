// Package version reports the build of holiday-explorer.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
)

// String returns the version, suffixed with +commit when the commit is known.
func String() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

// UserAgent identifies this build to the holiday API.
func UserAgent() string {
	return fmt.Sprintf("holiday-explorer/%s (%s/%s)", String(), runtime.GOOS, runtime.GOARCH)
}
