package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tesso57/livescroll/internal/config"
	"github.com/tesso57/livescroll/internal/poller"
	"github.com/tesso57/livescroll/internal/source"
	"github.com/tesso57/livescroll/internal/tui"
)

// shutdownGrace bounds how long process exit waits for an in-flight
// fetch after the user quits.
const shutdownGrace = 2 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "livescroll: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "livescroll: failed to open log file: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	src := source.NewRSS(cfg.URL, cfg.Label)
	p := poller.New(src, cfg.PollInterval(), cfg.FetchTimeout(), logger)
	p.Start(context.Background())
	defer p.Stop(shutdownGrace)

	logger.Info("starting",
		zap.String("url", cfg.URL),
		zap.Duration("interval", cfg.PollInterval()))

	program := tea.NewProgram(tui.NewModel(cfg, p.Results(), logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "livescroll: %v\n", err)
		return 1
	}

	logger.Info("shutting down")
	return 0
}

// newLogger builds a file-backed debug logger, or a no-op logger when no
// path is configured. Logging to stdout would corrupt the TUI.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
