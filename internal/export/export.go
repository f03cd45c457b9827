// Package export delivers the generated document to the system clipboard or
// to a file, and reads manifest text from the clipboard.
package export

import (
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/dbmrq/depdoc/internal/errors"
	"github.com/dbmrq/depdoc/internal/readme"
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns the OS clipboard.
func NewSystemClipboard() SystemClipboard {
	return SystemClipboard{}
}

// ReadAll returns the clipboard text.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.ClipboardError("read", errUnsupported)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.ClipboardError("read", err)
	}
	return text, nil
}

// WriteAll replaces the clipboard text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.ClipboardError("write", errUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.ClipboardError("write", err)
	}
	return nil
}

var errUnsupported = errors.New(errors.ErrClipboard, "no clipboard utility available")

// SaveReadme writes content to dir/filename and returns the written path.
// An empty filename means readme.DefaultFilename. The file is written to a
// temporary sibling first and renamed into place.
func SaveReadme(dir, filename, content string) (string, error) {
	if filename == "" {
		filename = readme.DefaultFilename
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filename)

	tmp, err := os.CreateTemp(dir, "."+filename+".*.tmp")
	if err != nil {
		return "", errors.ExportError(path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", errors.ExportError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", errors.ExportError(path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", errors.ExportError(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", errors.ExportError(path, err)
	}
	return path, nil
}
