package main

import (
	"os"

	"github.com/lucidsearch/luq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
