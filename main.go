package main

import (
	"os"

	"github.com/villnoweric/package-delivery-tycoon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
