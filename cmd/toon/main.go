package main

import (
	"os"

	"github.com/toonfmt/toon-go/cmd/toon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
