package main

import (
	"os"

	"github.com/voicethroughimage/vti/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
