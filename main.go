package main

import (
	"os"

	"github.com/shinypath/shinypath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
