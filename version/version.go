// Package version provides build-time version information.
//
// These variables are set at build time using ldflags:
//
//	go build -ldflags "\
//	  -X github.com/docubase/docursor/version.Version=1.2.3 \
//	  -X github.com/docubase/docursor/version.Revision=abc123 \
//	  -X 'github.com/docubase/docursor/version.BuiltAt=$(date)'"
package version

import (
	"fmt"
	"runtime"
)

// These variables are set during build time
var (
	// Version is the current version
	Version = "0.0.0"
	// Revision is the git commit hash
	Revision = "unknown"
	// BuiltAt is the build timestamp
	BuiltAt = "unknown"
	// GoVersion is the Go compiler version
	GoVersion = runtime.Version()
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	GoVersion string `json:"go_version"`
}

// GetVersionInfo returns the structured version information
func GetVersionInfo() Info {
	return Info{
		Version:   Version,
		Revision:  Revision,
		BuiltAt:   BuiltAt,
		GoVersion: GoVersion,
	}
}

// String returns a human readable version line
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, built %s, %s)", i.Version, i.Revision, i.BuiltAt, i.GoVersion)
}
