// Package components provides reusable TUI components for depdoc.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Title           string
	Source          string
	Dependencies    int
	DevDependencies int
}

// Header is a component that displays the document title and what is loaded.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Title:  "-",
			Source: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// Data returns the current header data.
func (h *Header) Data() HeaderData {
	return h.data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("DEPDOC")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	item := func(label, value string) string {
		return styles.HeaderLabelStyle.Render(label+": ") + styles.HeaderValueStyle.Render(value)
	}

	source := h.data.Source
	if source == "" {
		source = "-"
	}

	content := fmt.Sprintf("%s%s%s%s%s%s%s%s%s",
		title, sep,
		item("Title", h.data.Title), sep,
		item("Source", truncateString(source, 40)), sep,
		item("Deps", fmt.Sprintf("%d", h.data.Dependencies)), sep,
		item("Dev", fmt.Sprintf("%d", h.data.DevDependencies)),
	)

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}

// truncateString shortens s to maxLen runes, marking the cut with an ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
