package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar is a component that displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}

	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	content := strings.Join(parts, sep)

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

// Predefined shortcut sets, one per focused pane.
var (
	// EditorShortcuts apply while typing in the manifest editor.
	EditorShortcuts = []ShortcutDef{
		{"Tab", "next pane"},
		{"Ctrl+V", "paste"},
		{"Ctrl+O", "open file"},
		{"Ctrl+Y", "copy"},
		{"Ctrl+S", "save"},
		{"Ctrl+C", "quit"},
	}

	// ListShortcuts apply in the dependency lists.
	ListShortcuts = []ShortcutDef{
		{"↑↓", "select"},
		{"d", "delete"},
		{"c", "copy"},
		{"s", "save"},
		{"q", "quit"},
		{"?", "help"},
	}

	// PreviewShortcuts apply in the document preview.
	PreviewShortcuts = []ShortcutDef{
		{"↑↓", "scroll"},
		{"c", "copy"},
		{"s", "save"},
		{"q", "quit"},
		{"?", "help"},
	}

	// FileLoaderShortcuts apply while entering a manifest path.
	FileLoaderShortcuts = []ShortcutDef{
		{"Enter", "load"},
		{"Esc", "cancel"},
	}
)
