package main

import (
	"os"

	"sciencecalc/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
