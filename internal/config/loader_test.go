package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depdoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("nonexistent/depdoc.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/depdoc.yaml" {
		t.Errorf("expected path 'nonexistent/depdoc.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Readme.Title != "My Awesome Project" {
		t.Errorf("expected default title, got %q", cfg.Readme.Title)
	}
	if !cfg.Watch.Enabled {
		t.Error("expected watch enabled by default")
	}
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigPath), []byte("readme:\n  title: From Dir\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Readme.Title != "From Dir" {
		t.Errorf("expected title from .depdoc.yaml, got %q", cfg.Readme.Title)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
readme:
  title: Acme Web
  filename: DEPENDENCIES.md
  output_dir: docs

watch:
  enabled: false
  debounce: 1s

log:
  level: debug
  dir: /tmp/depdoc-logs
  json: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Readme.Title != "Acme Web" {
		t.Errorf("expected readme.title 'Acme Web', got %q", cfg.Readme.Title)
	}
	if cfg.Readme.Filename != "DEPENDENCIES.md" {
		t.Errorf("expected readme.filename 'DEPENDENCIES.md', got %q", cfg.Readme.Filename)
	}
	if cfg.Readme.OutputDir != "docs" {
		t.Errorf("expected readme.output_dir 'docs', got %q", cfg.Readme.OutputDir)
	}
	if cfg.Watch.Enabled {
		t.Error("expected watch.enabled false to be kept")
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected watch.debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level debug, got %q", cfg.Log.Level)
	}
	if !cfg.Log.JSON {
		t.Error("expected log.json true")
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "readme:\n  title: Minimal\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Readme.Title != "Minimal" {
		t.Errorf("expected title from file, got %q", cfg.Readme.Title)
	}
	if cfg.Readme.Filename != "README.md" {
		t.Errorf("expected default filename, got %q", cfg.Readme.Filename)
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("expected default debounce, got %v", cfg.Watch.Debounce)
	}
	if !cfg.Watch.Enabled {
		t.Error("expected watch enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "readme:\n  title: From File\nlog:\n  level: info\n")

	t.Setenv("DEPDOC_README_TITLE", "From Env")
	t.Setenv("DEPDOC_WATCH_ENABLED", "false")
	t.Setenv("DEPDOC_WATCH_DEBOUNCE", "750ms")
	t.Setenv("DEPDOC_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Readme.Title != "From Env" {
		t.Errorf("expected title from env, got %q", cfg.Readme.Title)
	}
	if cfg.Watch.Enabled {
		t.Error("expected watch disabled from env")
	}
	if cfg.Watch.Debounce != 750*time.Millisecond {
		t.Errorf("expected debounce 750ms from env, got %v", cfg.Watch.Debounce)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected log level error from env, got %q", cfg.Log.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "readme:\n  title: [unclosed\n")

	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Message != "failed to read config file" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "log:\n  level: shouting\n")

	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Message != "configuration validation failed" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected ValidationErrors to be wrapped, got %v", loadErr.Err)
	}
}

func TestLoadError_Error(t *testing.T) {
	withCause := &LoadError{Path: "a.yaml", Message: "bad", Err: errors.New("boom")}
	if withCause.Error() != "a.yaml: bad: boom" {
		t.Errorf("Error() = %q", withCause.Error())
	}
	noCause := &LoadError{Path: "a.yaml", Message: "bad"}
	if noCause.Error() != "a.yaml: bad" {
		t.Errorf("Error() = %q", noCause.Error())
	}
}
