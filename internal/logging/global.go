package logging

import "sync/atomic"

var (
	global atomic.Pointer[Logger]
	noop   = NewNoop()
)

// Global returns the process-wide logger, or a no-op logger when none is set.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noop
}

// SetGlobal replaces the process-wide logger. nil restores the no-op logger.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// InitGlobal opens a file logger from config and installs it globally.
// A nil config uses DefaultConfig.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	SetGlobal(l)
	return nil
}

// CloseGlobal closes the global logger's file and restores the no-op logger.
func CloseGlobal() error {
	if l := global.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	Global().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	Global().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	Global().Error(msg, args...)
}

// With returns the global logger with args attached.
func With(args ...any) *Logger {
	return Global().With(args...)
}
