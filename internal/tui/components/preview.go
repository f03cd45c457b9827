package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// Preview is a scrollable view of the generated document.
type Preview struct {
	viewport viewport.Model
	content  string
	focused  bool
	width    int
	height   int
}

// NewPreview creates a new Preview component.
func NewPreview() *Preview {
	return &Preview{
		viewport: viewport.New(40, 10),
		width:    40,
		height:   12,
	}
}

// SetSize sets the outer size of the pane.
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
	// border, padding and the title line
	p.viewport.Width = max(width-4, 1)
	p.viewport.Height = max(height-3, 1)
	p.viewport.SetContent(p.content)
}

// SetFocused sets whether the preview receives keys.
func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
}

// Focused reports whether the preview receives keys.
func (p *Preview) Focused() bool {
	return p.focused
}

// SetContent replaces the document. The scroll position is kept when possible.
func (p *Preview) SetContent(content string) {
	if content == p.content {
		return
	}
	p.content = content
	p.viewport.SetContent(content)
	if p.viewport.PastBottom() {
		p.viewport.GotoBottom()
	}
}

// Content returns the document being shown.
func (p *Preview) Content() string {
	return p.content
}

// ScrollPercent returns the scroll position as a fraction.
func (p *Preview) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}

// Update handles scrolling keys.
func (p *Preview) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			p.viewport.LineUp(1)
			return nil
		case "down", "j":
			p.viewport.LineDown(1)
			return nil
		case "home", "g":
			p.viewport.GotoTop()
			return nil
		case "end", "G":
			p.viewport.GotoBottom()
			return nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the preview inside a titled pane.
func (p *Preview) View() string {
	paneStyle, titleStyle := styles.PaneStyles(p.focused, p.width)

	scroll := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(fmt.Sprintf(" %.0f%%", p.viewport.ScrollPercent()*100))

	return paneStyle.Render(titleStyle.Render("Preview") + scroll + "\n" + p.viewport.View())
}
