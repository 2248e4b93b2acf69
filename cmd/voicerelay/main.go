package main

import (
	"os"

	"github.com/voicerelay/client-go/cmd/voicerelay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
