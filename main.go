package main

import (
	"os"

	"github.com/akverma/loanlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
