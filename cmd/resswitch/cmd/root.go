package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/resswitch/internal/config"
	"github.com/iiroan/resswitch/internal/display"
	"github.com/iiroan/resswitch/internal/preset"
	"github.com/iiroan/resswitch/internal/session"
	"github.com/iiroan/resswitch/internal/store"
	"github.com/iiroan/resswitch/internal/ui"
)

var (
	verbose     bool
	quiet       bool
	noColor     bool
	cfgFile     string
	presetsFile string
	logger      *log.Logger
	cfg         *config.Config
	// cfgLoadErr is set when the settings file exists but could not be used.
	cfgLoadErr  error
)

var rootCmd = &cobra.Command{
	Use:   "resswitch",
	Short: "Switch the display between saved resolution presets",
	Long: `resswitch keeps a short list of resolution and refresh-rate presets
and switches the primary display to one of them from a numbered menu.

Run without a subcommand for the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd.ErrOrStderr())

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if cfgFile != "" {
			cfg, cfgLoadErr = config.Load(cfgFile)
		} else {
			cfg, cfgLoadErr = config.LoadDefault()
		}
		if cfgLoadErr != nil {
			logger.Warn("could not load config, using defaults", "error", cfgLoadErr)
			cfg = config.DefaultConfig()
		}
		return nil
	},
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	s := session.New(session.Options{
		In:      cmd.InOrStdin(),
		Console: newConsole(cmd.OutOrStdout()),
		Store:   st,
		Applier: &lazyApplier{},
		Limits:  sessionLimits(),
		Logger:  logger,
	})

	if err := s.Run(cmd.Context()); err != nil {
		if errors.Is(err, session.ErrNotEnoughPresets) {
			return nil
		}
		return err
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.NewConsole(os.Stderr, uiPreferences()).Styles().Error.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Settings file (default: <user config dir>/resswitch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "Preset file (default: ~/resolutions.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func colorDisabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	return cfg != nil && cfg.UI.NoColor
}

func uiPreferences() ui.Preferences {
	prefs := ui.Preferences{NoColor: colorDisabled()}
	if cfg != nil {
		prefs.Theme = cfg.UI.Theme
		prefs.Dense = cfg.UI.Dense
	}
	return prefs
}

func newConsole(w io.Writer) *ui.Console {
	return ui.NewConsole(w, uiPreferences())
}

func sessionLimits() session.Limits {
	return session.Limits{
		MinSetup: cfg.Presets.MinSetup,
		MaxSetup: cfg.Presets.MaxSetup,
		MaxTotal: cfg.Presets.MaxTotal,
	}
}

func openStore() (*store.Store, error) {
	path := presetsFile
	if path == "" {
		var err error
		path, err = cfg.PresetsPath()
		if err != nil {
			return nil, fmt.Errorf("resolving preset file: %w", err)
		}
	}
	logger.Debug("using preset file", "path", path)
	return store.New(path, logger), nil
}

func openApplier() (*display.Applier, error) {
	controller, err := display.Open(display.Options{
		Backend: cfg.Display.Backend,
		Output:  cfg.Display.Output,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening display backend: %w", err)
	}
	return display.NewApplier(controller, cfg.Display.Persist, logger), nil
}

// loadPresets reads the preset file for the non-interactive commands.
func loadPresets() (*store.Store, []preset.Preset, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	presets, err := st.Load()
	if err != nil {
		return nil, nil, err
	}
	return st, presets, nil
}

func setupLogger(w io.Writer) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		palette := ui.DefaultPalette()
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(palette.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(palette.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(palette.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(palette.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
