// Package styles provides Lip Gloss styles for the depdoc TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Primary     = lipgloss.Color("#7C3AED") // purple: focus, titles
	Secondary   = lipgloss.Color("#06B6D4") // cyan: keys, focused pane titles
	Success     = lipgloss.Color("#10B981")
	Error       = lipgloss.Color("#EF4444")
	Muted       = lipgloss.Color("#6B7280")
	MutedLight  = lipgloss.Color("#9CA3AF")
	Background  = lipgloss.Color("#1F2937")
	Foreground  = lipgloss.Color("#F9FAFB")
	BorderColor = lipgloss.Color("#374151")
)

var (
	bold = lipgloss.NewStyle().Bold(true)

	TitleStyle       = bold.Foreground(Foreground).Background(Primary).Padding(0, 1)
	HeaderLabelStyle = lipgloss.NewStyle().Foreground(MutedLight)
	HeaderValueStyle = bold.Foreground(Foreground)

	KeyStyle       = bold.Foreground(Secondary)
	HelpStyle      = lipgloss.NewStyle().Foreground(Muted)
	StatusBarStyle = lipgloss.NewStyle().Background(Background).Padding(0, 1)

	MutedTextStyle   = lipgloss.NewStyle().Foreground(Muted)
	ErrorTextStyle   = lipgloss.NewStyle().Foreground(Error)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(Success)

	// List rows. The cursor row is only highlighted in a focused list.
	ItemStyle         = lipgloss.NewStyle().Foreground(Foreground)
	SelectedItemStyle = bold.Foreground(Foreground).Background(Background)
	BulletIcon        = lipgloss.NewStyle().Foreground(Success).Render("•")
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
	paneTitleStyle = bold.Foreground(MutedLight)
)

// PaneStyles returns the border and title styles of a pane. The focused pane
// gets the primary border and a highlighted title. A width of zero leaves the
// pane unsized.
func PaneStyles(focused bool, width int) (pane, title lipgloss.Style) {
	pane, title = paneStyle, paneTitleStyle
	if focused {
		pane = pane.BorderForeground(Primary)
		title = title.Foreground(Secondary)
	}
	if width > 0 {
		pane = pane.Width(width)
	}
	return pane, title
}
