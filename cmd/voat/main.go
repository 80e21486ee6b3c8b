package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/govoat/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app, err := cli.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer app.Close()

	if err := app.RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cli.IsAPIError(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
