package main

import (
	"os"

	"github.com/clinsaude/clin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
