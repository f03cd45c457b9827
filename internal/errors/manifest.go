package errors

import (
	"fmt"
)

// ManifestParseError creates an error for manifest text that could not be decoded.
// source names where the text came from ("editor", "clipboard" or a file path).
func ManifestParseError(source string, parseErr error) *DepdocError {
	return &DepdocError{
		Kind:    ErrParse,
		Message: "failed to parse manifest",
		Cause:   parseErr,
		Details: map[string]string{
			"source": source,
		},
		Suggestion: `Check that the text is a valid package.json:
  - keys and strings use double quotes
  - no trailing commas
  - "dependencies" and "devDependencies" map names to version strings`,
	}
}

// ManifestReadError creates an error for a manifest file that could not be read.
func ManifestReadError(path string, readErr error) *DepdocError {
	return &DepdocError{
		Kind:    ErrIO,
		Message: fmt.Sprintf("failed to read manifest: %s", path),
		Cause:   readErr,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the path exists and points to a readable file.",
	}
}

// ClipboardError creates an error for a failed clipboard operation.
// op is "read" or "write".
func ClipboardError(op string, cause error) *DepdocError {
	return &DepdocError{
		Kind:    ErrClipboard,
		Message: fmt.Sprintf("clipboard %s failed", op),
		Cause:   cause,
		Details: map[string]string{
			"operation": op,
		},
		Suggestion: `On Linux a clipboard utility is required:
  xclip, xsel or wl-clipboard (Wayland)`,
	}
}

// ExportError creates an error for a generated document that could not be written.
func ExportError(path string, cause error) *DepdocError {
	return &DepdocError{
		Kind:    ErrIO,
		Message: fmt.Sprintf("failed to save document: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the output directory exists and is writable (readme.output_dir).",
	}
}

// ConfigParseError creates an error for a configuration file that could not be loaded.
func ConfigParseError(configPath string, parseErr error) *DepdocError {
	return &DepdocError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to load configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check .depdoc.yaml for syntax errors:
  1. Use spaces, not tabs, for indentation
  2. Durations need a unit (e.g. 200ms)
  3. log.level must be debug, info, warn or error`,
	}
}
