package main

import (
	"os"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
