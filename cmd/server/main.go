package main

import (
	"os"

	"cheese-api/cmd/server/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
