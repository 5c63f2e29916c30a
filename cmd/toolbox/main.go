package main

import (
	"os"

	"github.com/askiada/go-toolbox/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
