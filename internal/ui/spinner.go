package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerModel shows progress while a display mode change is pending
type SpinnerModel struct {
	spinner  spinner.Model
	styles   Styles
	message  string
	quitting bool
	err      error
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string, styles Styles) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Title
	return SpinnerModel{
		spinner: s,
		styles:  styles,
		message: message,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SpinnerModel) View() string {
	if m.quitting {
		if m.err != nil {
			return m.styles.Error.Render("✗ "+m.message+" failed") + "\n"
		}
		return m.styles.Success.Render("✓ "+m.message) + "\n"
	}
	return m.spinner.View() + " " + m.message + "\n"
}

type errMsg struct{ err error }
type doneMsg struct{}

// RunWithSpinner runs fn behind a spinner when interactive, otherwise it
// prints a start and finish line to out.
func RunWithSpinner(out io.Writer, styles Styles, message string, fn func() error) error {
	if !IsInteractiveTerminal() {
		fmt.Fprintf(out, "⏳ %s...\n", message)
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(out, "✗ %s failed (%s)\n", message, elapsed.Round(time.Millisecond))
		} else {
			fmt.Fprintf(out, "✓ %s (%s)\n", message, elapsed.Round(time.Millisecond))
		}
		return err
	}

	m := NewSpinner(message, styles)
	p := tea.NewProgram(m, tea.WithOutput(out))

	errChan := make(chan error, 1)
	go func() {
		err := fn()
		errChan <- err
		if err != nil {
			p.Send(errMsg{err})
		} else {
			p.Send(doneMsg{})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return <-errChan
}
