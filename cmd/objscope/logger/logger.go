// Package logger provides file-backed slog logging for the TUI. Writing
// to stdout or stderr would corrupt the alternate screen, so logs go to
// a file and are discarded entirely unless enabled.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables
// file output.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "objscope-"
	logSuffix     = ".log"
	retentionDays = 14
)

// Options configures logger initialization.
type Options struct {
	Enabled bool       // when false, all output is discarded
	LogDir  string     // defaults to ~/.objscope/logs
	Level   slog.Level // defaults to LevelInfo
}

// Init configures logging. Call from main before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".objscope", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	pruneOldLogs(logDir)

	name := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// pruneOldLogs removes log files older than retentionDays. Best-effort.
func pruneOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
