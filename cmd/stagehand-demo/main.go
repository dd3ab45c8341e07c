package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stagehand-tui/stagehand/nav"
	"github.com/stagehand-tui/stagehand/teahost"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/stagehand/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("stagehand demo\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	logger, err := buildLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	router := nav.New(
		nav.WithLogger(logger),
		nav.WithPortalMapper(newAppMapper(logger)),
	)
	host := teahost.New(router, teahost.WithEmptyHint("everything closed, ctrl+c to quit"))

	router.Push(startRoute(cfg.StartRoute))

	var progOpts []tea.ProgramOption
	if cfg.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(host, progOpts...)

	// A second subscriber journals every lifecycle transition, showing
	// that sinks are independent of the host's own event pump.
	sub := router.Subscribe()

	var g errgroup.Group
	g.Go(func() error {
		for st := range sub.Events() {
			logger.Info("route "+st.Phase.String(),
				zap.String("route", st.Route.ID()),
				zap.Stringer("style", st.Route.Style()))
		}
		return nil
	})
	g.Go(func() error {
		defer sub.Close()
		_, err := p.Run()
		return err
	})
	return g.Wait()
}

// buildLogger writes diagnostics to a file so they never tear the TUI.
// Without a configured file everything is discarded.
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
