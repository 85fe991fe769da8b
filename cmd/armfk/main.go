package main

import (
	"os"

	"zappem.net/pub/math/screw/cmd/armfk/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
