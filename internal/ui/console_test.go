package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePlainOutput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, Preferences{NoColor: true})

	c.Section("Available Resolutions")
	c.Option("1", "1920x1080 144Hz")
	c.Success("Resolution changed to %s", "1920x1080 144Hz")
	c.Error("Invalid input")
	c.Prompt("Select action: ")

	want := "\n=== Available Resolutions ===\n" +
		"1 - 1920x1080 144Hz\n" +
		"✅ Resolution changed to 1920x1080 144Hz\n" +
		"❌ Invalid input\n" +
		"Select action: "
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out.String(), want)
	}
}

func TestConsoleDenseSkipsBlankLine(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, Preferences{NoColor: true, Dense: true})
	c.Section("Add New Resolution")
	if strings.HasPrefix(out.String(), "\n") {
		t.Fatalf("dense section should not start with a blank line: %q", out.String())
	}
}

func TestConsoleNonTTYHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, Preferences{Theme: "ember"})
	c.Warn("careful")
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected no ANSI escapes when writing to a buffer: %q", out.String())
	}
	if c.Palette().Name != "ember" {
		t.Fatalf("palette = %s", c.Palette().Name)
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := PaletteByName(name).Name; got != name {
			t.Fatalf("PaletteByName(%q).Name = %q", name, got)
		}
	}
	if got := PaletteByName("  EMBER "); got.Name != "ember" {
		t.Fatalf("expected normalized lookup, got %q", got.Name)
	}
	if got := PaletteByName("unknown"); got.Name != defaultThemeName {
		t.Fatalf("expected fallback to %s, got %s", defaultThemeName, got.Name)
	}
}

func TestHuhThemeDisabled(t *testing.T) {
	p := DefaultPalette()
	p.Disabled = true
	if HuhTheme(p) == nil {
		t.Fatalf("expected a theme")
	}
	if HuhTheme(DefaultPalette()) == nil {
		t.Fatalf("expected a theme")
	}
}

func TestHuhThemeRoles(t *testing.T) {
	p := PaletteByName("ember")
	theme := HuhTheme(p)

	if got := theme.Focused.Title.GetForeground(); got != p.Highlight {
		t.Fatalf("focused title color = %v, want %v", got, p.Highlight)
	}
	if got := theme.Blurred.Title.GetForeground(); got != p.Muted {
		t.Fatalf("blurred title color = %v, want %v", got, p.Muted)
	}
	if got := theme.Focused.ErrorMessage.GetForeground(); got != p.Error {
		t.Fatalf("error message color = %v, want %v", got, p.Error)
	}
	if got := theme.Focused.FocusedButton.GetBackground(); got != p.Primary {
		t.Fatalf("focused button background = %v, want %v", got, p.Primary)
	}
}
