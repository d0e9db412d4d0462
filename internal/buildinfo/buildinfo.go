// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/gogpu/gasket/internal/buildinfo.Version=v0.1.0 \
//	    -X github.com/gogpu/gasket/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build description printed by `gasket version`.
func String() string {
	return fmt.Sprintf("gasket %s (commit %s, built %s)", Version, Commit, Date)
}
