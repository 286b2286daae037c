// ABOUTME: CLI entrypoint for the snowscape preview host.
// ABOUTME: Wires together the registry, the TUI host, and the optional HTTP inspector.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bradysimon/snowscape/tui"
	"github.com/bradysimon/snowscape/web"
)

var version = "dev"

// config holds all CLI configuration parsed from flags.
type config struct {
	configPath  string
	addr        string
	noInspector bool
	showVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("snowscape %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

// parseFlags parses command-line flags and returns a populated config.
func parseFlags() config {
	var cfg config

	fs := flag.NewFlagSet("snowscape", flag.ContinueOnError)
	fs.StringVar(&cfg.configPath, "config", "snowscape.yaml", "Path to YAML config file")
	fs.StringVar(&cfg.addr, "addr", "", "Inspector listen address (overrides config)")
	fs.BoolVar(&cfg.noInspector, "no-inspector", false, "Disable the HTTP inspector")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	return cfg
}

func run(cfg config) int {
	hostCfg, err := tui.LoadConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.addr != "" {
		hostCfg.InspectorAddr = cfg.addr
	}

	registry := demoRegistry()

	var publisher tui.Publisher
	if !cfg.noInspector && hostCfg.InspectorAddr != "" {
		inspector := web.NewServer(hostCfg.InspectorAddr)
		inspector.Publish(registry.Snapshot())
		go func() {
			if err := inspector.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("inspector error: %v", err)
			}
		}()
		publisher = inspector
	}

	model := tui.NewAppModel(registry, hostCfg, publisher)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
