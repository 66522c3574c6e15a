package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iiroan/resswitch/internal/preset"
	"github.com/iiroan/resswitch/internal/store"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		presetsFile = ""
		cfgFile = ""
		listJSON = false
		cfgLoadErr = nil
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func seedPresets(t *testing.T, path string) {
	t.Helper()
	presets := []preset.Preset{
		{Width: 1920, Height: 1080, RefreshRate: 144},
		{Width: 1280, Height: 720, RefreshRate: 60},
	}
	if err := store.New(path, nil).Save(presets); err != nil {
		t.Fatalf("seeding presets: %v", err)
	}
}

func TestRootInteractiveExit(t *testing.T) {
	dir := t.TempDir()
	presetsPath := filepath.Join(dir, store.DefaultFileName)
	seedPresets(t, presetsPath)

	out, err := runRoot(t, "99\n0\n",
		"--config", filepath.Join(dir, "config.yaml"),
		"--presets", presetsPath,
	)
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	if !strings.Contains(out, "1 - 1920x1080 144Hz") {
		t.Fatalf("expected menu, got:\n%s", out)
	}
	if !strings.Contains(out, "Invalid resolution number") {
		t.Fatalf("expected invalid number notice, got:\n%s", out)
	}
}

func TestRootNotEnoughPresetsExitsCleanly(t *testing.T) {
	dir := t.TempDir()
	out, err := runRoot(t, "1920x1080 144\n",
		"--config", filepath.Join(dir, "config.yaml"),
		"--presets", filepath.Join(dir, store.DefaultFileName),
	)
	if err != nil {
		t.Fatalf("insufficient presets should not be a command error: %v", err)
	}
	if !strings.Contains(out, "Not enough resolutions added") {
		t.Fatalf("expected termination notice, got:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	presetsPath := filepath.Join(dir, store.DefaultFileName)
	seedPresets(t, presetsPath)

	out, err := runRoot(t, "", "list", "--json",
		"--config", filepath.Join(dir, "config.yaml"),
		"--presets", presetsPath,
	)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, `"1920x1080 144Hz"`) || !strings.Contains(out, `"1280x720 60Hz"`) {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestAddCommandWithArgs(t *testing.T) {
	dir := t.TempDir()
	presetsPath := filepath.Join(dir, store.DefaultFileName)
	seedPresets(t, presetsPath)

	out, err := runRoot(t, "", "add", "2560x1440", "165",
		"--config", filepath.Join(dir, "config.yaml"),
		"--presets", presetsPath,
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Resolution 2560x1440 165Hz added successfully!") {
		t.Fatalf("unexpected add output:\n%s", out)
	}

	presets, err := store.New(presetsPath, nil).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 3 || presets[2].Name() != "2560x1440 165Hz" {
		t.Fatalf("unexpected presets %v", presets)
	}
}

func TestAddCommandRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, "", "add", "1920x1080",
		"--config", filepath.Join(dir, "config.yaml"),
		"--presets", filepath.Join(dir, store.DefaultFileName),
	)
	if err == nil || !strings.Contains(err.Error(), preset.ReasonMissingFields) {
		t.Fatalf("add error = %v, want missing fields", err)
	}
}

func TestSelectPreset(t *testing.T) {
	presets := []preset.Preset{
		{Width: 1920, Height: 1080, RefreshRate: 144},
		{Width: 1280, Height: 720, RefreshRate: 60},
	}

	tests := []struct {
		name    string
		args    []string
		want    preset.Preset
		wantErr bool
	}{
		{name: "by number", args: []string{"2"}, want: presets[1]},
		{name: "by quoted name", args: []string{"1920x1080 144Hz"}, want: presets[0]},
		{name: "by split name", args: []string{"1280x720", "60hz"}, want: presets[1]},
		{name: "out of range", args: []string{"3"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "unknown name", args: []string{"640x480 60Hz"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectPreset(presets, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectPreset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("selectPreset() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := selectPreset(nil, []string{"1"}); err == nil {
		t.Fatalf("expected error with no presets")
	}
}

func TestSettingsKeepsUnreadableConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	original := []byte("presets:\n  path: /data/presets.json\n  min_setup: [\n")
	if err := os.WriteFile(cfgPath, original, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := runRoot(t, "", "settings", "--config", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "refusing to overwrite") {
		t.Fatalf("settings error = %v, want refusal", err)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Fatalf("config file was rewritten:\n%s", data)
	}
}
