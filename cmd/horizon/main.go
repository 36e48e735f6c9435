package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/horizon/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration and services are resolved by the root command once
	// flags are parsed.
	app := &cli.App{}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
