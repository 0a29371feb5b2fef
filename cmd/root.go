package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "talentsift"}

	root.AddCommand(serveCMD(), evaluateCMD(), predictCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
