package easyid3

import (
	"runtime"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	// Plain builds carry the ldflags placeholders, never empty strings.
	if info.GitCommit == "" || info.BuildTime == "" {
		t.Errorf("build metadata must not be empty: %+v", info)
	}
}
