package tui

import (
	"github.com/dbmrq/depdoc/internal/watch"
)

// Message types produced by the TUI's asynchronous commands. Each re-enters
// Update, which is the only place state changes.

// ManifestLoadedMsg carries manifest text read from a file or the clipboard.
type ManifestLoadedMsg struct {
	// Source is extractor.SourceClipboard or the file path.
	Source  string
	Content string
	Err     error
}

// ManifestChangedMsg is sent when a watched manifest file changes on disk.
type ManifestChangedMsg struct {
	// Watcher identifies the subscription; changes from a replaced watcher are dropped.
	Watcher *watch.Watcher
	Change  watch.Change
}

// CopiedMsg reports the result of copying the document to the clipboard.
type CopiedMsg struct {
	Err error
}

// SavedMsg reports the result of saving the document.
type SavedMsg struct {
	Path string
	Err  error
}
