package version

import (
	"runtime/debug"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	var info Info
	fillFromBuildInfo(&info, bi)

	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q, want v1.2.3", info.Version)
	}
	if info.Commit != "0123456" {
		t.Errorf("Commit = %q, want 0123456", info.Commit)
	}
	if got := info.String(); got != "v1.2.3 (commit: 0123456-dirty)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLdflagsWin(t *testing.T) {
	info := Info{Version: "v9", Commit: "fixed"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzzzzzzzz"}},
	})

	if info.Version != "v9" || info.Commit != "fixed" {
		t.Errorf("info = %+v, ldflags values should win", info)
	}
}

func TestGetFallbacks(t *testing.T) {
	info := Get()
	if info.Version == "" || info.Commit == "" {
		t.Errorf("Get() = %+v, fields should never be empty", info)
	}
}
