package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	config "gitlab.com/unnchai/agro.backend/src/production/AGT.Config"
)

func TestNewLoggerWritesToFlatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	log := NewLogger(&config.LoggingConfig{Level: "info", Format: "text", Output: path})
	log.Info("service started")
	log.Error("something broke")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "service started") {
		t.Errorf("info line missing from log file: %q", content)
	}
	if !strings.Contains(content, "something broke") {
		t.Errorf("error line missing from log file: %q", content)
	}
	// flat text lines carry a level marker, not JSON fields
	if strings.Contains(content, `"level":`) {
		t.Errorf("expected text format, got JSON: %q", content)
	}
}

func TestNewLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	log := NewLogger(&config.LoggingConfig{Level: "info", Format: "text", Output: path})
	log.Info("first run")

	log = NewLogger(&config.LoggingConfig{Level: "info", Format: "text", Output: path})
	log.Info("second run")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "first run") || !strings.Contains(content, "second run") {
		t.Errorf("log file not appended across opens: %q", content)
	}
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	log := NewLogger(&config.LoggingConfig{Level: "warn", Format: "text", Output: path})
	log.Info("too quiet")
	log.Warn("loud enough")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "too quiet") {
		t.Errorf("info line logged despite warn level: %q", content)
	}
	if !strings.Contains(content, "loud enough") {
		t.Errorf("warn line missing: %q", content)
	}
}
