package main

import (
	"os"

	"github.com/piwi3910/rvegen/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
