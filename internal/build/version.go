// Package build carries build metadata and the process-level logging
// infrastructure.
package build

import "fmt"

// version is the semantic version of claudevoice. Bumped on release.
const version = "0.2.0"

// Commit is the git commit hash the binary was built from. Set via
// linker flags:
//
//	go build -ldflags "-X github.com/roasbeef/claudevoice/internal/build.Commit=$(git rev-parse --short HEAD)"
var Commit string

// Version returns the full version string, including the commit hash
// when one was stamped in.
func Version() string {
	if Commit == "" {
		return version
	}

	return fmt.Sprintf("%s commit=%s", version, Commit)
}
