package main

import (
	"os"

	"github.com/abhisek/derivio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
