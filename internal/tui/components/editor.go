package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// Editor is the manifest text area. Its owner re-ingests the text after
// every update that changes Value.
type Editor struct {
	textarea textarea.Model
	width    int
	height   int
	focused  bool
	errMsg   string
}

// NewEditor creates a new Editor component.
func NewEditor() *Editor {
	ta := textarea.New()
	ta.Placeholder = "Paste or type package.json here...\n\n" +
		"{\n  \"dependencies\": {\"axios\": \"^1.0.0\"},\n  \"devDependencies\": {\"vite\": \"^5.0.0\"}\n}"
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetWidth(60)
	ta.SetHeight(10)

	return &Editor{
		textarea: ta,
	}
}

// SetSize sets the outer size of the pane.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	// border, padding and the title line
	if w := width - 4; w > 10 {
		e.textarea.SetWidth(w)
	}
	if h := height - 3; h > 3 {
		e.textarea.SetHeight(h)
	}
}

// Focus focuses the textarea.
func (e *Editor) Focus() tea.Cmd {
	e.focused = true
	return e.textarea.Focus()
}

// Blur removes focus from the textarea.
func (e *Editor) Blur() {
	e.focused = false
	e.textarea.Blur()
}

// Focused reports whether the editor receives keys.
func (e *Editor) Focused() bool {
	return e.focused
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the text.
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// SetError sets the parse error shown under the title. Empty clears it.
func (e *Editor) SetError(msg string) {
	e.errMsg = msg
}

// Error returns the parse error being shown.
func (e *Editor) Error() string {
	return e.errMsg
}

// Update forwards msg to the textarea.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return cmd
}

// View renders the editor inside a titled pane.
func (e *Editor) View() string {
	paneStyle, titleStyle := styles.PaneStyles(e.focused, e.width)

	title := titleStyle.Render("Manifest")
	if e.errMsg != "" {
		title += "  " + styles.ErrorTextStyle.Render("⚠ "+truncateString(e.errMsg, 60))
	}

	return paneStyle.Render(title + "\n" + e.textarea.View())
}
