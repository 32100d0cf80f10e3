package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HazzazBinFaiz/objscope/cmd/objscope/logger"
	"github.com/HazzazBinFaiz/objscope/inspect"
	"github.com/HazzazBinFaiz/objscope/jsondoc"
	"github.com/HazzazBinFaiz/objscope/printer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	debugMode := false
	dumpMode := false
	showIDs := false
	rootID := ""
	rootLabel := ""
	var openIDs []string

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug" || arg == "-d":
			debugMode = true
		case arg == "--dump":
			dumpMode = true
		case arg == "--ids":
			showIDs = true
		case strings.HasPrefix(arg, "--open="):
			openIDs = splitIDs(strings.TrimPrefix(arg, "--open="))
		case strings.HasPrefix(arg, "--root-id="):
			rootID = strings.TrimPrefix(arg, "--root-id=")
		case strings.HasPrefix(arg, "--label="):
			rootLabel = strings.TrimPrefix(arg, "--label=")
		default:
			filtered = append(filtered, arg)
		}
	}

	if err := logger.Init(logger.Options{Enabled: debugMode, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filtered) < 1 {
		printUsage()
		os.Exit(1)
	}
	switch filtered[0] {
	case "--help", "-h":
		printHelp()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("objscope %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filtered[0]
	logger.Info("starting objscope", "path", path, "debug", debugMode)

	value, err := loadValue(path)
	if err != nil {
		logger.Error("failed to load input", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	nodes := inspect.Build(value, inspect.Options{ID: rootID, Label: rootLabel})

	if dumpMode {
		opts := printer.DefaultOptions()
		opts.ShowIDs = showIDs
		if err := printer.PrintTree(os.Stdout, nodes, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	open := inspect.NewOpenSet(openIDs...)
	if len(openIDs) == 0 {
		// Start with the root open so the tree is not a single row.
		open.Set(nodes[0].ID, true)
	}

	m := NewModel(path, nodes, open)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadValue reads JSON from a file, or from stdin when path is "-",
// into the ordered document model.
func loadValue(path string) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	v, err := jsondoc.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func splitIDs(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: objscope [flags] <file.json | ->")
	fmt.Fprintln(os.Stderr, "Try 'objscope --help' for details.")
}

func printHelp() {
	fmt.Println(`objscope - interactive JSON value inspector

Usage:
  objscope [flags] <file.json>
  cat data.json | objscope -

Flags:
  --dump             print the tree to stdout and exit
  --ids              include node ids in --dump output
  --open=<ids>       comma-separated node ids to start expanded
  --root-id=<id>     root node id (default $ROOT)
  --label=<name>     label for the root node
  --debug, -d        write a debug log to ~/.objscope/logs
  --version, -v      print version
  --help, -h         this help`)
}
