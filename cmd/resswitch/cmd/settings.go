package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/resswitch/internal/config"
	"github.com/iiroan/resswitch/internal/display"
	"github.com/iiroan/resswitch/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure display backend and console preferences",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	if cfgLoadErr != nil {
		return fmt.Errorf("refusing to overwrite unreadable settings, fix or remove the file first: %w", cfgLoadErr)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if !ui.IsInteractiveTerminal() {
		return errors.New("settings requires an interactive terminal")
	}

	theme := cfg.UI.Theme
	dense := cfg.UI.Dense
	noColorPref := cfg.UI.NoColor
	backend := config.NormalizeName(cfg.Display.Backend)
	if backend == "" {
		backend = display.BackendAuto
	}
	output := cfg.Display.Output
	persist := cfg.Display.Persist
	maxTotalInput := strconv.Itoa(cfg.Presets.MaxTotal)

	themeOptions := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}
	backendOptions := make([]huh.Option[string], 0, len(display.Backends()))
	for _, name := range display.Backends() {
		backendOptions = append(backendOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display Backend").
				Description("auto uses the Windows display API on Windows and xrandr elsewhere").
				Options(backendOptions...).
				Value(&backend),
			huh.NewInput().
				Title("Output").
				Description("xrandr output name, empty for the primary display").
				Value(&output),
			huh.NewConfirm().
				Title("Persistent Changes").
				Description("Keep the new mode after a restart").
				Value(&persist),
			huh.NewInput().
				Title("Preset Limit").
				Description("Maximum number of saved presets, 0 for no limit").
				Value(&maxTotalInput).
				Validate(func(value string) error {
					n, err := strconv.Atoi(value)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a non-negative integer")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&theme),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing in the menu").
				Value(&dense),
			huh.NewConfirm().
				Title("Disable Colors").
				Description("Use monochrome output").
				Value(&noColorPref),
		),
	).WithTheme(ui.HuhTheme(newConsole(cmd.OutOrStdout()).Palette()))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	maxTotal, err := strconv.Atoi(maxTotalInput)
	if err != nil {
		return fmt.Errorf("invalid preset limit: %w", err)
	}

	cfg.UI = config.UIConfig{Theme: theme, Dense: dense, NoColor: noColorPref}
	cfg.Display.Backend = backend
	cfg.Display.Output = output
	cfg.Display.Persist = persist
	cfg.Presets.MaxTotal = maxTotal
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	newConsole(cmd.OutOrStdout()).Success("Settings saved to %s", path)
	return nil
}
