package main

import (
	"os"

	"passphrases/cmd/passphrases/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
