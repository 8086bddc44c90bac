package main

import (
	"os"

	"github.com/prooflab/stepcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
