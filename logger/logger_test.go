package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesRelativeFileUnderConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Config{Enabled: true, Level: "debug", File: "logs/test.log"}, dir); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	Debug("hello file", "k", "v")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "test.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") || !strings.Contains(string(data), "k=v") {
		t.Fatalf("log file = %q, want message and attrs", data)
	}
}

func TestInterceptAndLevel(t *testing.T) {
	if err := Init(Config{Enabled: true, Level: "warn", Stdout: true}, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	var buf bytes.Buffer
	Intercept(&buf)
	defer Restore()

	Info("filtered")
	Warn("kept")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Fatalf("info line passed a warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestDisabledLoggerDropsEverything(t *testing.T) {
	if err := Init(Config{Enabled: false}, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	var buf bytes.Buffer
	Intercept(&buf)
	defer Restore()

	Error("nothing")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		" Debug ": slog.LevelDebug,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	abs := filepath.Join(t.TempDir(), "a.log")
	tests := []struct {
		path, dir, want string
	}{
		{"logs/a.log", "/cfg", filepath.Join("/cfg", "logs", "a.log")},
		{"logs/a.log", "", "logs/a.log"},
		{abs, "/cfg", abs},
		{"~/a.log", "/cfg", filepath.Join(home, "a.log")},
	}
	for _, tt := range tests {
		if got := resolvePath(tt.path, tt.dir); got != tt.want {
			t.Errorf("resolvePath(%q, %q) = %q, want %q", tt.path, tt.dir, got, tt.want)
		}
	}
}
