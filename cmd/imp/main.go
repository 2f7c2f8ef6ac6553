package main

import (
	"os"

	"imp/interpreter-go/cmd/imp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
