package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novifinancial/serde-typegen/depgraph"
)

var depsCmd = &cobra.Command{
	Use:   "deps LOCATION",
	Short: "Print the dependency map of a registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd.Context(), args[0])
		checkErr(err)
		graph := depgraph.FromRegistry(registry)
		for _, name := range graph.Nodes() {
			deps := graph.Dependencies(name)
			if len(deps) == 0 {
				fmt.Printf("%s: -\n", name)
				continue
			}
			fmt.Printf("%s: %s\n", name, strings.Join(deps, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
