package main

import (
	"os"

	"globclip/cmd"
)

func main() {
	// cobra prints the propagated error to stderr; only the exit status is
	// decided here.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
