package main

import (
	"github.com/novifinancial/serde-typegen/cli/cmd"
)

func main() {
	cmd.Execute()
}
