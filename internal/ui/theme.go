package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formRoles assigns palette colors to the parts of the preset and settings forms.
type formRoles struct {
	heading lipgloss.Color
	text    lipgloss.Color
	hint    lipgloss.Color
	choice  lipgloss.Color
	problem lipgloss.Color
	frame   lipgloss.Color
	button  lipgloss.Color
	ink     lipgloss.Color
	cursor  lipgloss.Color
}

func rolesFor(p Palette) formRoles {
	return formRoles{
		heading: p.Highlight,
		text:    p.Foreground,
		hint:    p.Muted,
		choice:  p.Accent,
		problem: p.Error,
		frame:   p.Border,
		button:  p.Primary,
		ink:     p.Background,
		cursor:  p.Info,
	}
}

// HuhTheme returns a form theme built from the palette. A disabled palette
// yields huh's uncolored base theme.
func HuhTheme(p Palette) *huh.Theme {
	t := huh.ThemeBase()
	if p.Disabled {
		return t
	}
	r := rolesFor(p)

	f := &t.Focused
	f.Base = f.Base.BorderForeground(r.frame)
	f.Title = f.Title.Foreground(r.heading).Bold(true)
	f.NoteTitle = f.Title
	f.Description = f.Description.Foreground(r.hint)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(r.problem)
	f.ErrorMessage = f.ErrorMessage.Foreground(r.problem)
	f.SelectSelector = f.SelectSelector.Foreground(r.choice)
	f.Option = f.Option.Foreground(r.text)
	f.SelectedOption = f.SelectedOption.Foreground(r.choice).Bold(true)
	f.FocusedButton = f.FocusedButton.Foreground(r.ink).Background(r.button).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(r.text).Background(lipgloss.Color(""))
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(r.cursor)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(r.hint)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(r.choice)

	// Fields outside the active settings group fade to the hint color.
	t.Blurred = t.Focused
	b := &t.Blurred
	b.Base = b.Base.BorderStyle(lipgloss.HiddenBorder())
	b.Title = b.Title.Foreground(r.hint).Bold(false)
	b.NoteTitle = b.Title
	b.SelectSelector = lipgloss.NewStyle()
	b.NextIndicator = lipgloss.NewStyle()
	b.PrevIndicator = lipgloss.NewStyle()

	return t
}
