//go:build unix

package manifest

import (
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/dbmrq/depdoc/internal/errors"
)

func TestReadFile_FIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := syscall.Mkfifo(path, 0644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := ReadFile(path)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, errors.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadFile blocked on a FIFO")
	}
}
