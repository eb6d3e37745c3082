package main

import (
	"os"

	"github.com/katalvlaran/lvlgeo/cmd/lvlgeo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
