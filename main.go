package main

import (
	"os"

	"github.com/sitegen-ai/sitegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
