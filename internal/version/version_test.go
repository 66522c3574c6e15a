package version

import (
	"encoding/json"
	"runtime/debug"
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0123456789abcdef", "0123456"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortCommit(tt.in); got != tt.want {
			t.Errorf("ShortCommit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeefcafe"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	info := Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}.withBuildInfo(bi)
	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", info.Version)
	}
	if info.Commit != "deadbee" {
		t.Errorf("Commit = %q, want deadbee", info.Commit)
	}
	if info.BuildDate != "2026-01-02T03:04:05Z" {
		t.Errorf("BuildDate = %q", info.BuildDate)
	}
	if !info.Dirty {
		t.Errorf("expected dirty build")
	}
	if got := info.String(); got != "resswitch 1.2.3 (deadbee)-dirty" {
		t.Errorf("String() = %q", got)
	}
}

func TestWithBuildInfoKeepsLdflags(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeefcafe"}},
	}

	info := Info{Version: "0.1.0", Commit: "abc1234", BuildDate: "today"}.withBuildInfo(bi)
	if info.Version != "0.1.0" || info.Commit != "abc1234" || info.BuildDate != "today" {
		t.Fatalf("ldflags values overwritten: %+v", info)
	}
}

func TestJSON(t *testing.T) {
	data, err := Get().JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"version", "commit", "build_date", "go_version", "platform"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if !strings.Contains(decoded["platform"].(string), "/") {
		t.Errorf("platform = %v", decoded["platform"])
	}
}
