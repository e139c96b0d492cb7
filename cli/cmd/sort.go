package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novifinancial/serde-typegen/depgraph"
)

var sortCmd = &cobra.Command{
	Use:   "sort LOCATION",
	Short: "Print the emission order of a registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd.Context(), args[0])
		checkErr(err)
		graph := depgraph.FromRegistry(registry)
		for _, name := range depgraph.Sort(graph) {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
