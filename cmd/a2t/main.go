package main

import (
	"fmt"
	"os"

	"audiotranscriber/cmd/a2t/cmd"
	"audiotranscriber/internal/config"
)

func main() {
	// Load .env if present; a missing file is fine, the environment may
	// already carry the key.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
