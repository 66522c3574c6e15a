package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iiroan/resswitch/internal/display"
	"github.com/iiroan/resswitch/internal/preset"
	"github.com/iiroan/resswitch/internal/ui"
)

var applyCmd = &cobra.Command{
	Use:   "apply <number|name>",
	Short: "Switch to a saved preset without the menu",
	Long: `Switch the primary display to a saved preset, selected by its menu
number or by its name (for example "1920x1080 144Hz").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	_, presets, err := loadPresets()
	if err != nil {
		return err
	}

	p, err := selectPreset(presets, args)
	if err != nil {
		return err
	}

	return applyWithSpinner(cmd, p)
}

// selectPreset resolves a 1-based menu number or a display name.
func selectPreset(presets []preset.Preset, args []string) (preset.Preset, error) {
	if len(presets) == 0 {
		return preset.Preset{}, errors.New("no presets saved, run resswitch to set them up")
	}

	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			if n < 1 || n > len(presets) {
				return preset.Preset{}, fmt.Errorf("preset %d out of range (1-%d)", n, len(presets))
			}
			return presets[n-1], nil
		}
	}

	name := args[0]
	for _, a := range args[1:] {
		name += " " + a
	}
	if idx := preset.Find(presets, name); idx >= 0 {
		return presets[idx], nil
	}
	return preset.Preset{}, fmt.Errorf("no preset named %q", name)
}

func applyWithSpinner(cmd *cobra.Command, p preset.Preset) error {
	applier, err := openApplier()
	if err != nil {
		return err
	}

	console := newConsole(cmd.OutOrStdout())
	var mode display.Mode
	err = ui.RunWithSpinner(cmd.OutOrStdout(), console.Styles(), "Switching to "+p.Name(), func() error {
		var applyErr error
		mode, applyErr = applier.Apply(cmd.Context(), p)
		return applyErr
	})
	if errors.Is(err, display.ErrRestartRequired) {
		console.Warn("Resolution set to %s, restart required", mode)
		return nil
	}
	if err != nil {
		return err
	}
	console.Success("Resolution changed to %s", p.Name())
	return nil
}

// lazyApplier opens the display backend on first use so the menu still runs
// when no backend is available.
type lazyApplier struct {
	applier *display.Applier
}

func (l *lazyApplier) Apply(ctx context.Context, p preset.Preset) (display.Mode, error) {
	if l.applier == nil {
		applier, err := openApplier()
		if err != nil {
			return display.Mode{}, err
		}
		l.applier = applier
	}
	return l.applier.Apply(ctx, p)
}
