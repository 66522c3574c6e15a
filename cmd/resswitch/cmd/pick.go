package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iiroan/resswitch/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a preset from a full-screen list and apply it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, presets, err := loadPresets()
		if err != nil {
			return err
		}
		if len(presets) == 0 {
			newConsole(cmd.OutOrStdout()).Info("No presets saved, run resswitch to set them up")
			return nil
		}

		var active string
		if applier, err := openApplier(); err == nil {
			if mode, err := applier.Current(cmd.Context()); err == nil {
				active = mode.String()
			} else {
				logger.Debug("could not query current mode", "error", err)
			}
		}

		items := make([]ui.PickerItem, len(presets))
		for i, p := range presets {
			items[i] = ui.PickerItem{Label: p.Name(), Active: p.Name() == active}
		}

		console := newConsole(cmd.OutOrStdout())
		choice, err := ui.RunPicker("RESOLUTIONS", "Choose a display mode to apply.", items, console.Palette())
		if err != nil {
			return err
		}
		if choice < 0 {
			return nil
		}
		return applyWithSpinner(cmd, presets[choice])
	},
}
