// Package display queries and changes the active mode of the primary display
package display

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/iiroan/resswitch/internal/preset"
)

//go:generate go run go.uber.org/mock/mockgen -destination=controller_mocks.go -package=display . Controller

// Mode describes a display mode. Fields a backend cannot report stay zero.
type Mode struct {
	Width        int
	Height       int
	RefreshRate  int
	BitsPerPixel int
	PositionX    int
	PositionY    int
	Orientation  int
	Output       string
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d %dHz", m.Width, m.Height, m.RefreshRate)
}

// WithResolution returns m with only width, height and refresh rate replaced.
func (m Mode) WithResolution(width, height, refreshRate int) Mode {
	m.Width = width
	m.Height = height
	m.RefreshRate = refreshRate
	return m
}

// Controller is the OS capability to read and change the primary display mode.
type Controller interface {
	QueryCurrentMode(ctx context.Context) (Mode, error)
	// RequestMode changes width, height and refresh rate to those of mode.
	// persistent asks the OS to keep the change past the current session.
	RequestMode(ctx context.Context, mode Mode, persistent bool) error
}

// ErrRestartRequired is returned when the OS accepted the mode but needs a restart.
var ErrRestartRequired = errors.New("the computer must be restarted for the display mode to take effect")

// ModeError is a mode change rejected by the OS.
type ModeError struct {
	Mode Mode
	Code int
	Msg  string
}

func (e *ModeError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("changing display mode to %s: %s (code %d)", e.Mode, e.Msg, e.Code)
	}
	return fmt.Sprintf("changing display mode to %s: %s", e.Mode, e.Msg)
}

// Applier applies presets through a Controller.
type Applier struct {
	controller Controller
	persistent bool
	logger     *log.Logger
}

// NewApplier creates an Applier. A nil logger discards debug output.
func NewApplier(controller Controller, persistent bool, logger *log.Logger) *Applier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Applier{controller: controller, persistent: persistent, logger: logger}
}

// Apply switches the display to p, keeping every other field of the current mode.
func (a *Applier) Apply(ctx context.Context, p preset.Preset) (Mode, error) {
	current, err := a.controller.QueryCurrentMode(ctx)
	if err != nil {
		return Mode{}, fmt.Errorf("querying current display mode: %w", err)
	}

	target := current.WithResolution(p.Width, p.Height, p.RefreshRate)
	a.logger.Debug("requesting display mode",
		"current", current.String(),
		"target", target.String(),
		"bpp", target.BitsPerPixel,
		"persistent", a.persistent,
	)

	if err := a.controller.RequestMode(ctx, target, a.persistent); err != nil {
		if errors.Is(err, ErrRestartRequired) {
			return target, err
		}
		return current, err
	}
	return target, nil
}

// Current returns the active display mode.
func (a *Applier) Current(ctx context.Context) (Mode, error) {
	return a.controller.QueryCurrentMode(ctx)
}
