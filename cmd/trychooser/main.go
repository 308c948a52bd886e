package main

import (
	"os"

	"trychooser/cmd/trychooser/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
