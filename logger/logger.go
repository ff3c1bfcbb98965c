// Package logger is the process-wide log sink for alphachat.
//
// Records go to the log file under the config directory and, when asked, to
// stdout. While the chat TUI owns the terminal, stdout output is redirected
// with Intercept so log lines never tear the screen; the file keeps
// receiving everything.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	Enabled bool
	Level   string // debug, info, warn or error; anything else is info
	Stdout  bool
	File    string // relative paths live under the config dir
}

// sink is everything the handler is built from.
type sink struct {
	cfg      Config
	file     *os.File
	redirect io.Writer // replaces stdout while set
	handler  *slog.Logger
}

var (
	mu  sync.RWMutex
	cur sink
)

// Init replaces the active configuration. Any previously opened log file is
// closed first. The logger stays usable when the file cannot be opened; the
// error is returned so the caller can tell the user.
func Init(cfg Config, configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	cur.cfg = cfg
	cur.closeFile()
	if !cfg.Enabled {
		cur.handler = nil
		return nil
	}

	var openErr error
	if cfg.File != "" {
		path := resolvePath(cfg.File, configDir)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			openErr = fmt.Errorf("logger: open log file: %w", err)
		} else {
			cur.file = f
		}
	}
	cur.build()
	return openErr
}

// Intercept sends stdout-bound records to w instead.
func Intercept(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	cur.redirect = w
	cur.build()
}

// Restore ends an Intercept.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	cur.redirect = nil
	cur.build()
}

// Close flushes and closes the log file. Later records fall back to stderr.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	cur.closeFile()
	cur.build()
}

func (s *sink) closeFile() {
	if s.file == nil {
		return
	}
	_ = s.file.Close()
	s.file = nil
}

// build must be called with mu held.
func (s *sink) build() {
	if !s.cfg.Enabled {
		s.handler = nil
		return
	}
	out := s.writer()
	s.handler = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(s.cfg.Level)}))
}

func (s *sink) writer() io.Writer {
	var ws []io.Writer
	switch {
	case s.redirect != nil:
		ws = append(ws, s.redirect)
	case s.cfg.Stdout:
		ws = append(ws, os.Stdout)
	}
	if s.file != nil {
		ws = append(ws, s.file)
	}
	switch len(ws) {
	case 0:
		return os.Stderr
	case 1:
		return ws[0]
	default:
		return io.MultiWriter(ws...)
	}
}

func Debug(msg string, args ...any) { emit(slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { emit(slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { emit(slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { emit(slog.LevelError, msg, args) }

func emit(level slog.Level, msg string, args []any) {
	mu.RLock()
	h := cur.handler
	mu.RUnlock()
	if h != nil {
		h.Log(context.Background(), level, msg, args...)
	}
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

func parseLevel(name string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l
	}
	return slog.LevelInfo
}

// resolvePath expands a leading "~" and anchors relative paths at dir.
func resolvePath(path, dir string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
