package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggerRoutesByLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cleanup, err := setupLogger("", "info", &stdout, &stderr)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	defer cleanup()

	slog.Debug("hidden")
	slog.Info("to stdout")
	slog.Error("to stderr")

	if strings.Contains(stdout.String(), "hidden") {
		t.Error("debug record should be dropped at info level")
	}
	if !strings.Contains(stdout.String(), "to stdout") || strings.Contains(stdout.String(), "to stderr") {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "to stderr") || strings.Contains(stderr.String(), "to stdout") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestSetupLoggerFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "prodajalna.log")
	var stdout, stderr bytes.Buffer
	cleanup, err := setupLogger(path, "warn", &stdout, &stderr)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}

	slog.Warn("low stock", "product", "Widget")
	slog.Error("save failed")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "low stock") || !strings.Contains(string(data), "save failed") {
		t.Errorf("log file missing records: %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
