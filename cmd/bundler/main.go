package main

import (
	"os"

	"github.com/maja42/bootstrap/cmd/bundler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
