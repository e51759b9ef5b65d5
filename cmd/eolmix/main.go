package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/eolmix/internal/cli"
	"github.com/arthur-debert/eolmix/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.NewPrinter(os.Stderr, ui.FormatAuto).Styled("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
