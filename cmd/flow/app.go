package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/levels"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// app holds what every command is built from.
type app struct {
	cfg     config.FlowConfig
	logger  *log.Logger
	logFile *os.File
	catalog *levels.Catalog
	theme   tui.Theme
}

// loadApp reads the configuration, applies command line overrides and loads
// the level catalog. With logToFile the logger writes to the configured log
// file so the TUI keeps the terminal.
func loadApp(logToFile bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	a.logger, a.logFile = newLogger(cfg.Log, logToFile)

	theme, ok := tui.ThemeByName(cfg.Theme)
	if !ok {
		a.logger.Warn("unknown theme, using default", "theme", cfg.Theme)
	}
	a.theme = theme

	loader := levels.NewDirLoader(config.ExpandHome(cfg.Levels.Dir))
	loader.Logger = a.logger
	all, err := loader.LoadAll()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("levels: %w", err)
	}
	a.catalog = levels.NewCatalog(all)
	a.logger.Debug("levels loaded", "count", a.catalog.Len(), "dir", cfg.Levels.Dir)
	return a, nil
}

// applyFlags lets global flags override config values.
func applyFlags(cfg *config.FlowConfig) {
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagPlayer != "" {
		cfg.Storage.Player = flagPlayer
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

func newLogger(lc config.LogConfig, toFile bool) (*log.Logger, *os.File) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if toFile {
		out = io.Discard
		if lc.File != "" {
			path := config.ExpandHome(lc.File)
			if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
				if f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); openErr == nil {
					out, file = f, f
				}
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flow",
		Level:           level,
	})
	return logger, file
}

// openStore opens the progress database.
func (a *app) openStore() (*storage.Store, error) {
	return storage.Open(a.cfg.Storage.DBPath)
}

// player returns the progress owner for local commands.
func (a *app) player() string {
	if a.cfg.Storage.Player == "" {
		return storage.DefaultPlayer
	}
	return a.cfg.Storage.Player
}

// Close releases the log file.
func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// exitOnError prints the error and exits like every command does.
func exitOnError(what string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, err)
	os.Exit(1)
}
