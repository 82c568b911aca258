package main

import (
	"os"

	"keybuf/cmd/keybuf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
