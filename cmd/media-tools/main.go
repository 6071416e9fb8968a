package main

import (
	"os"

	"github.com/jacobcui/media-tools/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
