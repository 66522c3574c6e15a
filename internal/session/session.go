// Package session runs the interactive preset setup, add and menu flows
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iiroan/resswitch/internal/display"
	"github.com/iiroan/resswitch/internal/preset"
	"github.com/iiroan/resswitch/internal/ui"
)

// Menu actions besides the preset numbers
const (
	ActionAdd  = "a"
	ActionExit = "0"
)

// ErrNotEnoughPresets is returned when input ends before setup collected the minimum.
var ErrNotEnoughPresets = errors.New("not enough resolutions")

// PresetStore loads and saves the preset sequence.
type PresetStore interface {
	Load() ([]preset.Preset, error)
	Save([]preset.Preset) error
	Path() string
}

// ModeApplier switches the display to a preset.
type ModeApplier interface {
	Apply(ctx context.Context, p preset.Preset) (display.Mode, error)
}

// Limits bounds how many presets setup and add collect.
type Limits struct {
	MinSetup int
	MaxSetup int
	MaxTotal int // 0 means unlimited
}

// DefaultLimits returns the setup bounds of 2 to 5 presets with unlimited adds.
func DefaultLimits() Limits {
	return Limits{MinSetup: 2, MaxSetup: 5}
}

// Session holds the in-memory presets for one interactive run.
type Session struct {
	in      *bufio.Reader
	console *ui.Console
	store   PresetStore
	applier ModeApplier
	limits  Limits
	logger  *log.Logger
	presets []preset.Preset
}

// Options configures a Session
type Options struct {
	In      io.Reader
	Console *ui.Console
	Store   PresetStore
	Applier ModeApplier
	Limits  Limits
	Logger  *log.Logger
}

// New creates a session. Zero limits fall back to DefaultLimits.
func New(opts Options) *Session {
	limits := opts.Limits
	if limits.MinSetup <= 0 {
		limits = DefaultLimits()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		in:      bufio.NewReader(opts.In),
		console: opts.Console,
		store:   opts.Store,
		applier: opts.Applier,
		limits:  limits,
		logger:  logger,
	}
}

// Presets returns a copy of the current preset sequence.
func (s *Session) Presets() []preset.Preset {
	return append([]preset.Preset(nil), s.presets...)
}

// Run loads presets, runs setup when there are none, then the menu loop.
func (s *Session) Run(ctx context.Context) error {
	s.console.Warn("Configuration file will be saved to: %s", s.store.Path())

	presets, err := s.store.Load()
	if err != nil {
		s.logger.Debug("preset load failed", "error", err)
		s.console.Error("Error loading config file: %v", err)
		presets = nil
	}
	s.presets = presets

	if len(s.presets) == 0 {
		if _, err := s.Setup(ctx); err != nil {
			if errors.Is(err, ErrNotEnoughPresets) {
				s.console.Line("Not enough resolutions added. Program terminated.")
			}
			return err
		}
	}

	return s.Menu(ctx)
}

// Setup collects between MinSetup and MaxSetup presets and saves them.
func (s *Session) Setup(ctx context.Context) ([]preset.Preset, error) {
	s.console.Section("Resolution Setup")
	s.console.Line("You need to add at least %d resolutions", s.limits.MinSetup)
	s.console.Error("WARNING: if you don't know your refresh rate, enter 60")
	s.console.Error("WARNING: custom resolutions must exist in the NVIDIA or AMD control panel, otherwise the mode will not change")
	s.console.Line("Format: WIDTHxHEIGHT FREQUENCY (e.g.: 1920x1080 144)")
	s.console.Line("Type '%s' to finish (after minimum %d resolutions)", preset.StopKeyword, s.limits.MinSetup)

	collected := make([]preset.Preset, 0, s.limits.MaxSetup)

	for len(collected) < s.limits.MinSetup {
		p, stop, err := s.readPreset(fmt.Sprintf("Resolution %d: ", len(collected)+1))
		if err != nil {
			s.logger.Debug("setup input ended", "collected", len(collected), "error", err)
			return collected, ErrNotEnoughPresets
		}
		if stop {
			s.console.Warn("You need to add at least %d resolutions!", s.limits.MinSetup)
			continue
		}
		collected = append(collected, p)
	}

	for len(collected) < s.limits.MaxSetup {
		prompt := fmt.Sprintf("Resolution %d (additional, type '%s' to finish): ", len(collected)+1, preset.StopKeyword)
		p, stop, err := s.readPreset(prompt)
		if err != nil || stop {
			break
		}
		collected = append(collected, p)
	}

	s.presets = collected
	if err := s.store.Save(collected); err != nil {
		s.console.Error("Error saving config file: %v", err)
	} else {
		s.console.Info("Resolutions saved to: %s", s.store.Path())
	}
	return s.Presets(), nil
}

// Add prompts for one more preset and saves the updated sequence.
// It reports whether a preset was added.
func (s *Session) Add(ctx context.Context) bool {
	if s.limits.MaxTotal > 0 && len(s.presets) >= s.limits.MaxTotal {
		s.console.Warn("Preset limit reached (%d)", s.limits.MaxTotal)
		return false
	}

	s.console.Section("Add New Resolution")
	p, stop, err := s.readPreset("Enter new resolution (format: WIDTHxHEIGHT FREQUENCY): ")
	if err != nil || stop {
		return false
	}

	s.presets = append(s.presets, p)
	if err := s.store.Save(s.presets); err != nil {
		s.console.Error("Error saving config file: %v", err)
	}
	s.console.Success("Resolution %s added successfully!", p.Name())
	s.console.Info("Config file: %s", s.store.Path())
	return true
}

// Menu renders the preset list and dispatches selections until exit or end of input.
func (s *Session) Menu(ctx context.Context) error {
	for {
		s.renderMenu()

		line, err := s.readLine("Select action: ")
		if err != nil {
			s.logger.Debug("menu input ended", "error", err)
			return nil
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		switch {
		case choice == ActionExit:
			return nil
		case choice == ActionAdd:
			s.Add(ctx)
		case isDigits(choice):
			n, err := strconv.Atoi(choice)
			if err != nil || n < 1 || n > len(s.presets) {
				s.console.Error("Invalid resolution number")
				continue
			}
			s.apply(ctx, s.presets[n-1])
		default:
			s.console.Error("Invalid input")
		}
	}
}

func (s *Session) renderMenu() {
	s.console.Section("Available Resolutions")
	for i, p := range s.presets {
		s.console.Option(strconv.Itoa(i+1), p.Name())
	}
	s.console.Option(ActionAdd, "Add new resolution")
	s.console.Option(ActionExit, "Exit")
}

func (s *Session) apply(ctx context.Context, p preset.Preset) {
	mode, err := s.applier.Apply(ctx, p)
	switch {
	case errors.Is(err, display.ErrRestartRequired):
		s.console.Warn("Resolution set to %s, restart required", mode)
	case err != nil:
		s.console.Error("Error: %v", err)
	default:
		s.console.Success("Resolution changed to %s", p.Name())
	}
}

// readPreset prompts until the line parses or is the stop keyword.
func (s *Session) readPreset(prompt string) (preset.Preset, bool, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return preset.Preset{}, false, err
		}
		p, stop, err := preset.Parse(line)
		if err != nil {
			s.console.Error("Error: %v. Please try again or type '%s'", err, preset.StopKeyword)
			continue
		}
		return p, stop, nil
	}
}

// readLine returns the next input line. A final line without a newline is
// returned before io.EOF.
func (s *Session) readLine(prompt string) (string, error) {
	s.console.Prompt(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
