//go:build !windows

package display

import "github.com/iiroan/resswitch/internal/platform"

func newWindowsController(Options) (Controller, error) {
	return nil, platform.RequireWindows("the windows display backend")
}
