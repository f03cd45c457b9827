// Package config provides configuration data structures for depdoc.
package config

import (
	"strings"
	"time"

	"github.com/dbmrq/depdoc/internal/logging"
	"github.com/dbmrq/depdoc/internal/readme"
)

// Config represents the complete depdoc configuration loaded from .depdoc.yaml.
type Config struct {
	Readme ReadmeConfig `mapstructure:"readme" yaml:"readme"`
	Watch  WatchConfig  `mapstructure:"watch"  yaml:"watch"`
	Log    LogConfig    `mapstructure:"log"    yaml:"log"`
}

// ReadmeConfig configures the generated document and where it is saved.
type ReadmeConfig struct {
	// Title is the document heading (default: "My Awesome Project").
	Title string `mapstructure:"title" yaml:"title"`
	// Filename is the export file name (default: README.md).
	Filename string `mapstructure:"filename" yaml:"filename"`
	// OutputDir is the directory the document is saved in (default: ".").
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// WatchConfig configures re-reading of loaded manifest files.
type WatchConfig struct {
	// Enabled turns file watching on (default: true).
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Debounce is the quiet period before a changed file is re-read (default: 200ms).
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// LogConfig configures the log file.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the log directory (default: .depdoc/logs).
	Dir string `mapstructure:"dir" yaml:"dir"`
	// JSON writes JSON log lines instead of text.
	JSON bool `mapstructure:"json" yaml:"json"`
}

// Default values.
const (
	DefaultOutputDir = "."
	DefaultDebounce  = 200 * time.Millisecond
	DefaultLogLevel  = "info"
	DefaultLogDir    = ".depdoc/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Readme: ReadmeConfig{
			Title:     readme.DefaultTitle,
			Filename:  readme.DefaultFilename,
			OutputDir: DefaultOutputDir,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: DefaultDebounce,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   DefaultLogDir,
		},
	}
}

// ApplyDefaults fills in any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if strings.TrimSpace(c.Readme.Title) == "" {
		c.Readme.Title = defaults.Readme.Title
	}
	if c.Readme.Filename == "" {
		c.Readme.Filename = defaults.Readme.Filename
	}
	if c.Readme.OutputDir == "" {
		c.Readme.OutputDir = defaults.Readme.OutputDir
	}
	// Watch.Enabled is decoded on top of the defaults by the loader, so an
	// explicit false survives.
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = defaults.Watch.Debounce
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.ContainsAny(c.Readme.Filename, `/\`) {
		errs = append(errs, &ValidationError{
			Field:   "readme.filename",
			Message: "must be a file name, not a path",
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, &ValidationError{Field: "watch.debounce", Message: "must be non-negative"})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoggingConfig converts the log section into a logging.Config.
func (c *Config) LoggingConfig() *logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	if c.Log.Dir != "" {
		cfg.LogDir = c.Log.Dir
	}
	cfg.JSONFormat = c.Log.JSON
	return cfg
}
