package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lootifier/internal/cli"
	"github.com/arthur-debert/lootifier/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.FormatAuto.Resolve(os.Stderr), os.Stderr)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
