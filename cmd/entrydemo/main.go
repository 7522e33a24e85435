// Package main is a terminal demo host for the entryline engine.
//
// It hosts three fields (text, integer, hex color) sharing one focus
// arbiter and one clipboard, and drives them from a tcell event loop.
package main

import (
	"flag"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "", "path to a TOML or YAML configuration file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("entrydemo", version)
		return 0
	}

	app, err := newApp(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "entrydemo: %v\n", err)
		return 1
	}
	defer app.close()

	if err := app.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "entrydemo: %v\n", err)
		return 1
	}
	return 0
}
