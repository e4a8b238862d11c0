package main

import (
	"os"

	"github.com/tangzhangming/tracy/cmd/tracy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
