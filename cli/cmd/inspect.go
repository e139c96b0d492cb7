package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliutil "github.com/novifinancial/serde-typegen/cli/util"
	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/layout"
)

var (
	red   = color.New(color.FgRed)   // nolint:gochecknoglobals
	green = color.New(color.FgGreen) // nolint:gochecknoglobals
)

var inspectCmd = &cobra.Command{
	Use:   "inspect LOCATION",
	Short: "Compile a registry and print its emission order and layout decisions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd.Context(), args[0])
		checkErr(err)
		plan, err := layout.Resolve(registry)
		checkErr(err)

		rows := make([][]string, 0, len(plan.Order))
		for i, name := range plan.Order {
			container, _ := registry.Get(name)
			rows = append(rows, []string{
				strconv.Itoa(i),
				name,
				containerShape(container),
				strings.Join(plan.Forward(name), ", "),
			})
		}
		cliutil.PrintTable(os.Stdout, []string{"Order", "Name", "Shape", "Forward declarations"}, rows)

		for _, name := range plan.Order {
			for _, ref := range plan.Refs(name) {
				site := fmt.Sprintf("%s.%s", name, ref.Path)
				if ref.Path == "" {
					site = name
				}
				if ref.Indirect {
					red.Printf("  %s -> %s (indirect)\n", site, ref.Target)
					continue
				}
				green.Printf("  %s -> %s (by value)\n", site, ref.Target)
			}
		}
	},
}

func containerShape(c format.ContainerFormat) string {
	switch v := c.(type) {
	case format.UnitStruct:
		return "unit struct"
	case format.NewtypeStruct:
		return "newtype struct"
	case format.TupleStruct:
		return "tuple struct"
	case format.Struct:
		return fmt.Sprintf("struct (%d fields)", len(v.Fields))
	case format.Enum:
		return fmt.Sprintf("enum (%d variants)", len(v.Variants))
	}
	return "unknown"
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
