package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestGlobal_DefaultsToNoop(t *testing.T) {
	SetGlobal(nil)
	defer SetGlobal(nil)

	l := Global()
	if l == nil {
		t.Fatal("Global() returned nil")
	}

	// Should not panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestSetGlobal(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(NewWithWriter(&buf, LevelDebug))
	defer SetGlobal(nil)

	Warn("manifest rejected", "reason", "syntax")
	With("pane", "editor").Info("focused")

	out := buf.String()
	if !strings.Contains(out, "manifest rejected") {
		t.Errorf("expected global warn in output, got %q", out)
	}
	if !strings.Contains(out, "pane=editor") {
		t.Errorf("expected With attributes in output, got %q", out)
	}
}

func TestInitAndCloseGlobal(t *testing.T) {
	dir := t.TempDir()
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: dir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	if Global().LogPath() == "" {
		t.Error("global logger should write to a file")
	}

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}
	if Global().LogPath() != "" {
		t.Error("after CloseGlobal the global logger should be a noop")
	}
	SetGlobal(nil)
}
