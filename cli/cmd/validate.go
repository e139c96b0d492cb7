package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novifinancial/serde-typegen/format"
)

var validateCmd = &cobra.Command{
	Use:   "validate LOCATION",
	Short: "Check a registry for malformed definitions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd.Context(), args[0])
		checkErr(err)
		if err := format.Validate(registry); err != nil {
			bailf("invalid: %v", err)
		}
		fmt.Printf("ok: %d definitions\n", registry.Len())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
