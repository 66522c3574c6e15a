package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/iiroan/resswitch/internal/preset"
)

func samplePresets() []preset.Preset {
	return []preset.Preset{
		{Width: 1920, Height: 1080, RefreshRate: 144},
		{Width: 1280, Height: 720, RefreshRate: 60},
		{Width: 2560, Height: 1440, RefreshRate: 165},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), nil)
	presets, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 0 {
		t.Fatalf("expected no presets, got %d", len(presets))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", DefaultFileName), nil)
	want := samplePresets()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("round trip mismatch: %v", diff)
	}

	if err := s.Save(got); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	again, err := s.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if diff := deep.Equal(again, want); diff != nil {
		t.Fatalf("second round trip mismatch: %v", diff)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := New(path, nil)
	if err := s.Save([]preset.Preset{{Width: 1920, Height: 1080, RefreshRate: 144}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	want := `[
    {
        "width": 1920,
        "height": 1080,
        "freq": 144,
        "name": "1920x1080 144Hz"
    }
]`
	if string(data) != want {
		t.Fatalf("unexpected file contents:\n%s", data)
	}
}

func TestSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := New(path, nil).Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "not json"},
		{name: "object instead of array", content: `{"width": 1920}`},
		{name: "unknown field", content: `[{"width": 1920, "height": 1080, "freq": 60, "name": "1920x1080 60Hz", "depth": 32}]`},
		{name: "missing name", content: `[{"width": 1920, "height": 1080, "freq": 60}]`},
		{name: "missing freq", content: `[{"width": 1920, "height": 1080, "name": "1920x1080 60Hz"}]`},
		{name: "null width", content: `[{"width": null, "height": 1080, "freq": 60, "name": "x"}]`},
		{name: "string width", content: `[{"width": "1920", "height": 1080, "freq": 60, "name": "1920x1080 60Hz"}]`},
		{name: "zero height", content: `[{"width": 1920, "height": 0, "freq": 60, "name": "1920x0 60Hz"}]`},
		{name: "name mismatch", content: `[{"width": 1920, "height": 1080, "freq": 60, "name": "Full HD"}]`},
		{name: "trailing data", content: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			presets, err := New(path, nil).Load()
			if !errors.Is(err, ErrLoad) {
				t.Fatalf("Load error = %v, want ErrLoad", err)
			}
			if presets != nil {
				t.Fatalf("expected nil presets on failure, got %v", presets)
			}
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := New(dir, nil).Load()
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("Load of a directory error = %v, want ErrLoad", err)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}
	s := New(filepath.Join(blocker, DefaultFileName), nil)
	err := s.Save(samplePresets())
	if !errors.Is(err, ErrSave) {
		t.Fatalf("Save error = %v, want ErrSave", err)
	}
	if !strings.Contains(err.Error(), "saving presets") {
		t.Fatalf("unexpected message: %v", err)
	}
}
