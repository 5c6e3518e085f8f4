package easyid3

import "runtime"

// Version is the semantic version of the easyid3 library.
const Version = "0.1.0"

// BuildInfo describes the library version and the build that produced
// the binary.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetBuildInfo returns the library version together with build
// metadata. GitCommit and BuildTime come from -ldflags and read
// "unknown" in plain builds:
//
//	go build -ldflags="-X github.com/simonhull/easyid3.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/easyid3.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
