package cmd

import (
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active display mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applier, err := openApplier()
		if err != nil {
			return err
		}
		mode, err := applier.Current(cmd.Context())
		if err != nil {
			return err
		}

		console := newConsole(cmd.OutOrStdout())
		console.Highlight("%s", mode)
		if mode.Output != "" {
			console.Info("output: %s", mode.Output)
		}
		if mode.BitsPerPixel > 0 {
			console.Info("color depth: %d bpp", mode.BitsPerPixel)
		}
		console.Info("position: %d,%d", mode.PositionX, mode.PositionY)
		return nil
	},
}
