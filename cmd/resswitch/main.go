// resswitch switches the primary display between saved resolution presets
package main

import (
	"os"

	"github.com/iiroan/resswitch/cmd/resswitch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
