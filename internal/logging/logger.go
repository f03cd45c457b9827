// Package logging provides structured logging for depdoc.
// The TUI owns the terminal, so log output goes to files under the log directory.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levels = [...]struct {
	name string
	slog slog.Level
}{
	LevelDebug: {"DEBUG", slog.LevelDebug},
	LevelInfo:  {"INFO", slog.LevelInfo},
	LevelWarn:  {"WARN", slog.LevelWarn},
	LevelError: {"ERROR", slog.LevelError},
}

func (l Level) valid() bool { return l >= LevelDebug && l <= LevelError }

func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levels[l].name
}

func (l Level) slogLevel() slog.Level {
	if !l.valid() {
		return slog.LevelInfo
	}
	return levels[l].slog
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
// An empty string means LevelInfo.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarn, nil
	}
	for l := range levels {
		if levels[l].name == name {
			return Level(l), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

const (
	filePrefix = "depdoc_"
	fileSuffix = ".log"
)

// Config configures the logger.
type Config struct {
	Level Level
	// LogDir receives one file per run. Empty means no file.
	LogDir string
	// MaxLogFiles and MaxLogAge bound what Cleanup keeps; zero disables the bound.
	MaxLogFiles int
	MaxLogAge   time.Duration
	JSONFormat  bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      ".depdoc/logs",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger is a structured logger for depdoc.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logPath string

	// file is shared by loggers derived through With; only the root closes it.
	file *logFile
}

type logFile struct {
	mu sync.Mutex
	f  *os.File
}

func (lf *logFile) close() error {
	if lf == nil {
		return nil
	}
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.f == nil {
		return nil
	}
	err := lf.f.Close()
	lf.f = nil
	return err
}

// New creates a logger writing to a fresh timestamped file in config.LogDir
// and prunes old files in the background.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(config.LogDir, filePrefix+time.Now().Format("20060102_150405")+fileSuffix)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	l := &Logger{
		slog:    slog.New(newHandler(f, config)),
		config:  config,
		logPath: path,
		file:    &logFile{f: f},
	}
	go func() { _ = l.Cleanup() }()
	return l, nil
}

// NewNoop creates a logger that discards everything.
func NewNoop() *Logger {
	return &Logger{
		slog:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: DefaultConfig(),
	}
}

// NewWithWriter creates a logger that writes to w instead of a file.
func NewWithWriter(w io.Writer, level Level) *Logger {
	cfg := &Config{Level: level}
	return &Logger{
		slog:   slog.New(newHandler(w, cfg)),
		config: cfg,
	}
}

func newHandler(w io.Writer, config *Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	if config.JSONFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// LogPath returns the file this logger writes to, or "" if none.
func (l *Logger) LogPath() string { return l.logPath }

// Close closes the log file. It is safe to call more than once.
func (l *Logger) Close() error { return l.file.close() }

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	derived := *l
	derived.slog = l.slog.With(args...)
	return &derived
}

type sourceKey struct{}

// WithSource records where manifest text came from ("editor", "clipboard"
// or a file path) so WithContext can attach it to log records.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

// WithContext returns a logger carrying the manifest source stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if source, ok := ctx.Value(sourceKey{}).(string); ok && source != "" {
		return l.With("source", source)
	}
	return l
}

// Cleanup removes depdoc log files beyond MaxLogFiles or older than
// MaxLogAge. The current log file is never removed.
func (l *Logger) Cleanup() error {
	dir := l.config.LogDir
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var files []candidate
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{filepath.Join(dir, name), info.ModTime()})
	}

	// newest first
	slices.SortFunc(files, func(a, b candidate) int { return b.modTime.Compare(a.modTime) })

	cutoff := time.Now().Add(-l.config.MaxLogAge)
	removed := 0
	for i, f := range files {
		if f.path == l.logPath {
			continue
		}
		excess := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		stale := l.config.MaxLogAge > 0 && f.modTime.Before(cutoff)
		if (excess || stale) && os.Remove(f.path) == nil {
			removed++
		}
	}

	if removed > 0 {
		l.Debug("removed old log files", "count", removed, "dir", dir)
	}
	return nil
}
