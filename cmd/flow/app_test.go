package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flow/internal/config"
)

func resetFlags() {
	flagConfig, flagDBPath, flagLevels = "", "", ""
	flagPlayer, flagTheme, flagLogLevel = "", "", ""
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	defer resetFlags()

	cfg := config.DefaultFlowConfig()
	applyFlags(&cfg)
	if cfg != config.DefaultFlowConfig() {
		t.Fatalf("empty flags changed config: %+v", cfg)
	}

	flagDBPath = "/tmp/p.db"
	flagLevels = "/tmp/levels"
	flagPlayer = "bob"
	flagTheme = "neon"
	flagLogLevel = "debug"
	applyFlags(&cfg)

	if cfg.Storage.DBPath != "/tmp/p.db" || cfg.Levels.Dir != "/tmp/levels" {
		t.Errorf("paths not overridden: %+v", cfg)
	}
	if cfg.Storage.Player != "bob" || cfg.Theme != "neon" || cfg.Log.Level != "debug" {
		t.Errorf("values not overridden: %+v", cfg)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flow.log")
	logger, file := newLogger(config.LogConfig{Level: "info", File: path}, true)
	if file == nil {
		t.Fatal("expected a log file")
	}
	logger.Info("hello", "k", "v")
	logger.Debug("hidden")
	file.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "flow") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	_, file := newLogger(config.LogConfig{Level: "nonsense"}, true)
	if file != nil {
		t.Error("no file expected without a path")
	}
}

func TestLoadAppUsesConfigFile(t *testing.T) {
	defer resetFlags()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "flow.yaml")
	body := "storage:\n  db_path: \"" + filepath.Join(dir, "p.db") + "\"\ntheme: \"pastel\"\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = cfgPath

	a, err := loadApp(false)
	if err != nil {
		t.Fatalf("loadApp: %v", err)
	}
	defer a.Close()

	if a.theme.Name != "pastel" {
		t.Errorf("theme = %q, want pastel", a.theme.Name)
	}
	if a.catalog.Len() == 0 {
		t.Error("builtin levels missing from catalog")
	}
	if a.player() != "local" {
		t.Errorf("player = %q, want local", a.player())
	}
}

func TestLoadAppRejectsBadLogLevel(t *testing.T) {
	defer resetFlags()

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadApp(false); err == nil {
		t.Error("missing custom config should fail")
	}

	flagConfig = ""
	flagLogLevel = "loud"
	if _, err := loadApp(false); err == nil {
		t.Error("unknown log level should fail")
	}
}
