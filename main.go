package main

import (
	"os"

	"github.com/sandeshsubedi9/Sandeshblog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
