package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// MessageLevel selects how the status message is rendered.
type MessageLevel int

const (
	MessageInfo MessageLevel = iota
	MessageSuccess
	MessageError
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Source          string
	Dependencies    int
	DevDependencies int
	Message         string
	Level           MessageLevel
	ShowShortcuts   bool
	Shortcuts       []ShortcutDef
}

// StatusBar shows where the manifest came from, the selection counts,
// the last result message and the shortcuts for the focused pane.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
			Shortcuts:     EditorShortcuts,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetSource sets the manifest source label.
func (s *StatusBar) SetSource(source string) {
	s.data.Source = source
}

// SetCounts sets the number of included runtime and development dependencies.
func (s *StatusBar) SetCounts(runtime, dev int) {
	s.data.Dependencies = runtime
	s.data.DevDependencies = dev
}

// SetMessage sets the status message and its level.
func (s *StatusBar) SetMessage(message string, level MessageLevel) {
	s.data.Message = message
	s.data.Level = level
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetShortcuts replaces the displayed shortcuts.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	source := s.data.Source
	if source == "" {
		source = "none"
	}

	left := label.Render("Source: ") + value.Render(truncateString(source, 32)) + sep +
		label.Render("Deps: ") + value.Render(fmt.Sprintf("%d", s.data.Dependencies)) + sep +
		label.Render("Dev: ") + value.Render(fmt.Sprintf("%d", s.data.DevDependencies))

	if s.data.Message != "" {
		left += sep + s.renderMessage()
	}

	right := ""
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		right = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	if right == "" {
		return containerStyle.Render(left)
	}
	return containerStyle.Render(left + "  " + right)
}

func (s *StatusBar) renderMessage() string {
	switch s.data.Level {
	case MessageSuccess:
		return styles.SuccessTextStyle.Render("✓ " + s.data.Message)
	case MessageError:
		return styles.ErrorTextStyle.Render("✗ " + s.data.Message)
	default:
		return lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true).
			Render(s.data.Message)
	}
}
