package main

import (
	"os"

	"github.com/mpranav/dubfab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
