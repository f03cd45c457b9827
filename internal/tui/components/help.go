package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}

// ShortcutGroup is a titled block of shortcuts in the help overlay.
type ShortcutGroup struct {
	Title     string
	Shortcuts []ShortcutDef
}

// HelpGroups lists every binding the application handles.
var HelpGroups = []ShortcutGroup{
	{"Manifest", []ShortcutDef{
		{"Ctrl+V", "Paste manifest from clipboard"},
		{"Ctrl+O", "Load manifest file"},
		{"Tab", "Next pane"},
		{"Shift+Tab", "Previous pane"},
	}},
	{"Dependencies", []ShortcutDef{
		{"j/↓ k/↑", "Move selection"},
		{"g/G", "First or last entry"},
		{"d/x/Del", "Delete selected"},
	}},
	{"README", []ShortcutDef{
		{"c/Ctrl+Y", "Copy to clipboard"},
		{"s/Ctrl+S", "Save README"},
	}},
	{"General", []ShortcutDef{
		{"?", "Toggle help"},
		{"q", "Quit (outside editor)"},
		{"Ctrl+C", "Quit"},
	}},
}

var (
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Background(styles.Primary).
			Bold(true).
			Padding(0, 1)
	helpGroupStyle = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	helpKeyStyle   = lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(10)
	helpDescStyle  = lipgloss.NewStyle().Foreground(styles.MutedLight)
	helpNoteStyle  = lipgloss.NewStyle().Foreground(styles.Muted).Italic(true)
	helpBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(styles.Primary).
			Padding(1, 2)
)

// HelpOverlay shows the key bindings and the names that are never listed.
type HelpOverlay struct {
	visible  bool
	width    int
	height   int
	groups   []ShortcutGroup
	excluded []string
}

// NewHelpOverlay creates a hidden overlay. excluded names the built-in
// packages left out of every list.
func NewHelpOverlay(excluded ...string) *HelpOverlay {
	return &HelpOverlay{
		width:    60,
		height:   20,
		groups:   HelpGroups,
		excluded: excluded,
	}
}

func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *HelpOverlay) Show()           { h.visible = true }
func (h *HelpOverlay) Hide()           { h.visible = false }
func (h *HelpOverlay) Toggle()         { h.visible = !h.visible }
func (h *HelpOverlay) IsVisible() bool { return h.visible }

// Update closes the overlay on any key.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return nil
	}
	h.Hide()
	return func() tea.Msg { return HelpClosedMsg{} }
}

// View renders the overlay, or nothing when hidden.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Width(max(h.width-4, 0)).Render("  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, group := range h.groups {
		b.WriteString(helpGroupStyle.Render(group.Title))
		b.WriteString("\n")
		for _, sc := range group.Shortcuts {
			b.WriteString("  " + helpKeyStyle.Render(sc.Key) + " " + helpDescStyle.Render(sc.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	if len(h.excluded) > 0 {
		b.WriteString(helpNoteStyle.Render("Never listed: " + strings.Join(h.excluded, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(helpNoteStyle.Render("Press any key to close"))

	return helpBoxStyle.Render(b.String())
}
