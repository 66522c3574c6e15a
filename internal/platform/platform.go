package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user config directory.
const AppName = "resswitch"

// RequireWindows returns an error if the current OS is not Windows.
func RequireWindows(feature string) error {
	if runtime.GOOS != "windows" {
		if feature == "" {
			feature = AppName
		}
		return fmt.Errorf("%s is supported on Windows only (current: %s)", feature, runtime.GOOS)
	}
	return nil
}

// IsWindows reports whether the current OS is Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// HomeFile returns name inside the user's home directory.
func HomeFile(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, name), nil
}

// ConfigFile returns name inside the per-user resswitch config directory.
func ConfigFile(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, AppName, name), nil
}
