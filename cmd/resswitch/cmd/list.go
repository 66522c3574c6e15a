package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, presets, err := loadPresets()
		if err != nil {
			return err
		}

		if listJSON {
			names := make([]string, len(presets))
			for i, p := range presets {
				names[i] = p.Name()
			}
			data, err := json.MarshalIndent(names, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling presets: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		console := newConsole(cmd.OutOrStdout())
		console.Section("Saved Resolutions")
		if len(presets) == 0 {
			console.Info("No presets saved in %s", st.Path())
			return nil
		}
		for i, p := range presets {
			console.Option(strconv.Itoa(i+1), p.Name())
		}
		console.Info("Preset file: %s", st.Path())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print preset names as a JSON array")
}
