package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/resswitch/internal/preset"
	"github.com/iiroan/resswitch/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add [WIDTHxHEIGHT FREQUENCY]",
	Short: "Add a preset",
	Long: `Add a preset to the preset file. Without arguments an input form is
shown, for example:

  resswitch add 1920x1080 144`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, presets, err := loadPresets()
	if err != nil {
		return err
	}
	if limit := cfg.Presets.MaxTotal; limit > 0 && len(presets) >= limit {
		return fmt.Errorf("preset limit reached (%d)", limit)
	}

	console := newConsole(cmd.OutOrStdout())

	var p preset.Preset
	if len(args) > 0 {
		var stop bool
		p, stop, err = preset.Parse(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("invalid preset: %w", err)
		}
		if stop {
			return nil
		}
	} else {
		p, err = promptPreset(console.Palette())
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if preset.Find(presets, p.Name()) >= 0 {
		logger.Warn("preset already saved, adding duplicate", "preset", p.Name())
	}

	presets = append(presets, p)
	if err := st.Save(presets); err != nil {
		return err
	}

	console.Success("Resolution %s added successfully!", p.Name())
	console.Info("Config file: %s", st.Path())
	return nil
}

func promptPreset(palette ui.Palette) (preset.Preset, error) {
	if !ui.IsInteractiveTerminal() {
		return preset.Preset{}, errors.New("no preset given and the terminal is not interactive")
	}

	var raw string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New Resolution").
				Description("WIDTHxHEIGHT FREQUENCY. If you don't know the refresh rate, enter 60.").
				Placeholder("1920x1080 144").
				Value(&raw).
				Validate(func(value string) error {
					if preset.IsStop(value) {
						return errors.New("enter a resolution")
					}
					_, _, err := preset.Parse(value)
					return err
				}),
		),
	).WithTheme(ui.HuhTheme(palette))

	if err := form.Run(); err != nil {
		return preset.Preset{}, err
	}

	p, _, err := preset.Parse(raw)
	return p, err
}
