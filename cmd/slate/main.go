// Package main is the entry point for the slate editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/slate/internal/config"
	"github.com/dshills/slate/internal/editor"
	"github.com/dshills/slate/internal/logging"
	"github.com/dshills/slate/internal/plugin"
	"github.com/dshills/slate/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logPath     string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&logPath, "log", "", "Path to log file (logging disabled when empty)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Slate - a minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: slate [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Slate %s (%s)\n", version, commit)
		return 0
	}

	log := logging.Nop()
	if logPath != "" {
		fileLog, err := logging.NewFile(logPath, logging.ParseLevel(logLevel), "slate")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		log = fileLog
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := terminal.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	// Restore cooked mode on every exit path.
	defer term.Fini()

	editor.Version = version

	ed := editor.New(editor.Options{
		Path:    flag.Arg(0),
		Config:  cfg,
		Logger:  log,
		Backend: term,
	})
	defer ed.Close()

	host, err := plugin.Load(config.InitScriptPath(), ed)
	if err != nil {
		log.Error("plugin: %v", err)
		ed.Status(fmt.Sprintf("Plugin error: %v", err))
	} else {
		ed.SetPlugins(host)
	}

	if err := ed.Run(); err != nil {
		if errors.Is(err, terminal.ErrClosed) {
			log.Error("terminal closed unexpectedly")
		}
		// Fini has to run before anything is printed.
		term.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
