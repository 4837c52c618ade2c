package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// resetFlags restores the global flags after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagSeed, flagFPS = 0, 0
		flagConfig, flagScoresPath, flagDBPath = "", "", ""
		flagLogFile, flagLogLevel = "", ""
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "tick_rate: 20\nledger_path: /tmp/from-file.json\n")
	flagFPS = 60
	flagDBPath = "/tmp/history.db"
	flagLogLevel = "debug"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60 from --fps", cfg.TickRate)
	}
	if cfg.LedgerPath != "/tmp/from-file.json" {
		t.Errorf("LedgerPath = %q, want value from file", cfg.LedgerPath)
	}
	if cfg.HistoryPath != "/tmp/history.db" {
		t.Errorf("HistoryPath = %q, want --db value", cfg.HistoryPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsInvalidOverride(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "tick_rate: 30\n")
	flagFPS = 1000

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() should reject an out of range --fps")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "score", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=42") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "t2048") {
		t.Errorf("prefix missing: %q", out)
	}

	if _, err := newLogger(&buf, config.LogConfig{Level: "loud"}); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "t2048.log")

	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
