package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iiroan/resswitch/internal/platform"
)

// Backend names accepted by Open
const (
	BackendAuto    = "auto"
	BackendWindows = "windows"
	BackendXrandr  = "xrandr"
)

// Options selects and configures a display backend
type Options struct {
	Backend string
	// Output names the xrandr output; empty selects the primary one.
	Output string
	Logger *log.Logger
}

// Open returns the Controller for the configured backend.
func Open(opts Options) (Controller, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" || backend == BackendAuto {
		backend = BackendXrandr
		if platform.IsWindows() {
			backend = BackendWindows
		}
	}
	opts.Logger.Debug("opening display backend", "backend", backend)

	switch backend {
	case BackendWindows:
		if err := platform.RequireWindows("the windows display backend"); err != nil {
			return nil, err
		}
		return newWindowsController(opts)
	case BackendXrandr:
		return newXrandrController(opts)
	default:
		return nil, fmt.Errorf("unknown display backend %q", opts.Backend)
	}
}

// Backends returns the accepted backend names.
func Backends() []string {
	return []string{BackendAuto, BackendWindows, BackendXrandr}
}
