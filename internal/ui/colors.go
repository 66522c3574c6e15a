package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the console color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "aurora"

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"aurora", "ember", "mono"}
}

var palettes = map[string]Palette{
	"aurora": {
		Primary:    "#22D3EE",
		Secondary:  "#A78BFA",
		Accent:     "#38BDF8",
		Info:       "#60A5FA",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Error:      "#F87171",
		Muted:      "#94A3B8",
		Background: "#0B1120",
		Foreground: "#E2E8F0",
		Border:     "#334155",
		Highlight:  "#7DD3FC",
	},
	"ember": {
		Primary:    "#F97316",
		Secondary:  "#F43F5E",
		Accent:     "#FACC15",
		Info:       "#38BDF8",
		Success:    "#22C55E",
		Warning:    "#F59E0B",
		Error:      "#EF4444",
		Muted:      "#94A3B8",
		Background: "#0F172A",
		Foreground: "#E2E8F0",
		Border:     "#475569",
		Highlight:  "#FDBA74",
	},
	"mono": {
		Primary:    "#E2E8F0",
		Secondary:  "#CBD5F5",
		Accent:     "#94A3B8",
		Info:       "#E2E8F0",
		Success:    "#E2E8F0",
		Warning:    "#94A3B8",
		Error:      "#CBD5F5",
		Muted:      "#94A3B8",
		Background: "#0B1220",
		Foreground: "#E2E8F0",
		Border:     "#64748B",
		Highlight:  "#F8FAFC",
	},
}

// PaletteByName returns a palette by theme name, falling back to the default.
func PaletteByName(name string) Palette {
	name = strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[name]
	if !ok {
		name = defaultThemeName
		p = palettes[name]
	}
	p.Name = name
	return p
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}
