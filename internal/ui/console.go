// Package ui renders the resswitch console and its interactive widgets
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Preferences controls console rendering.
type Preferences struct {
	Theme   string
	NoColor bool
	Dense   bool
}

// Styles holds the rendered text styles for one palette.
type Styles struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Item    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds styles for p, rendering through r.
func NewStyles(r *lipgloss.Renderer, p Palette) Styles {
	if p.Disabled {
		plain := r.NewStyle()
		return Styles{
			Header:  plain,
			Title:   plain,
			Key:     plain,
			Item:    plain,
			Success: plain,
			Warning: plain,
			Error:   plain,
			Muted:   plain,
			Prompt:  plain,
		}
	}
	return Styles{
		Header:  r.NewStyle().Foreground(p.Background).Background(p.Primary).Bold(true).Padding(0, 1),
		Title:   r.NewStyle().Foreground(p.Primary).Bold(true),
		Key:     r.NewStyle().Foreground(p.Accent).Bold(true),
		Item:    r.NewStyle().Foreground(p.Foreground),
		Success: r.NewStyle().Foreground(p.Success).Bold(true),
		Warning: r.NewStyle().Foreground(p.Warning),
		Error:   r.NewStyle().Foreground(p.Error).Bold(true),
		Muted:   r.NewStyle().Foreground(p.Muted),
		Prompt:  r.NewStyle().Foreground(p.Secondary).Bold(true),
	}
}

// Console writes styled, line-oriented output.
type Console struct {
	out     io.Writer
	styles  Styles
	palette Palette
	dense   bool
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer, prefs Preferences) *Console {
	palette := PaletteByName(prefs.Theme)
	palette.Disabled = prefs.NoColor
	return &Console{
		out:     out,
		styles:  NewStyles(lipgloss.NewRenderer(out), palette),
		palette: palette,
		dense:   prefs.Dense,
	}
}

// Palette returns the active palette.
func (c *Console) Palette() Palette {
	return c.palette
}

// Styles returns the active styles.
func (c *Console) Styles() Styles {
	return c.styles
}

// Section prints a section header, preceded by a blank line unless dense.
func (c *Console) Section(title string) {
	if !c.dense {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, c.styles.Header.Render("=== "+title+" ==="))
}

// Line prints plain text.
func (c *Console) Line(format string, args ...any) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Option prints a menu entry such as "1 - 1920x1080 144Hz".
func (c *Console) Option(key string, label string) {
	fmt.Fprintln(c.out, c.styles.Key.Render(key)+" - "+c.styles.Item.Render(label))
}

// Info prints a muted informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

// Highlight prints a line in the title style.
func (c *Console) Highlight(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Title.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Success.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Error prints a failure line.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Error.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Prompt prints a prompt without a trailing newline.
func (c *Console) Prompt(text string) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(text))
}
