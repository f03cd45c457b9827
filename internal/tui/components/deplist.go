package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/deps"
	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// DependencyDeleteMsg asks the owner to remove Name from the selection for Kind.
type DependencyDeleteMsg struct {
	Kind deps.Kind
	Name string
}

// DepList is a scrollable list of the included dependencies of one section.
type DepList struct {
	kind        deps.Kind
	items       []string
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewDepList creates an empty list for kind.
func NewDepList(kind deps.Kind) *DepList {
	return &DepList{
		kind:   kind,
		items:  []string{},
		height: 10,
	}
}

// Kind returns the section this list shows.
func (l *DepList) Kind() deps.Kind {
	return l.kind
}

// SetSelection replaces the items with the included names of sel.
func (l *DepList) SetSelection(sel deps.Selection) {
	l.SetItems(sel.Included())
}

// SetItems replaces the items, keeping the cursor in range.
func (l *DepList) SetItems(items []string) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.updateScroll()
}

// Items returns the names currently shown.
func (l *DepList) Items() []string {
	return l.items
}

// Len returns the number of items.
func (l *DepList) Len() int {
	return len(l.items)
}

// SetSize sets the width and the number of visible rows.
func (l *DepList) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
	l.updateScroll()
}

// SetFocused sets whether the list receives keys.
func (l *DepList) SetFocused(focused bool) {
	l.focused = focused
}

// Focused reports whether the list receives keys.
func (l *DepList) Focused() bool {
	return l.focused
}

// Selected returns the cursor index.
func (l *DepList) Selected() int {
	return l.selected
}

// SelectedName returns the name under the cursor, or "" if the list is empty.
func (l *DepList) SelectedName() string {
	if l.selected < 0 || l.selected >= len(l.items) {
		return ""
	}
	return l.items[l.selected]
}

// MoveUp moves the cursor up.
func (l *DepList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.updateScroll()
	}
}

// MoveDown moves the cursor down.
func (l *DepList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
		l.updateScroll()
	}
}

// GoToTop moves the cursor to the first item.
func (l *DepList) GoToTop() {
	l.selected = 0
	l.updateScroll()
}

// GoToBottom moves the cursor to the last item.
func (l *DepList) GoToBottom() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
		l.updateScroll()
	}
}

// updateScroll ensures the selected item is visible.
func (l *DepList) updateScroll() {
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	}
	if l.selected >= l.scrollStart+l.height {
		l.scrollStart = l.selected - l.height + 1
	}
	if l.scrollStart < 0 {
		l.scrollStart = 0
	}
}

// Update handles navigation and delete keys.
func (l *DepList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		l.MoveUp()
	case "down", "j":
		l.MoveDown()
	case "home", "g":
		l.GoToTop()
	case "end", "G":
		l.GoToBottom()
	case "d", "x", "delete":
		name := l.SelectedName()
		if name == "" {
			return nil
		}
		kind := l.kind
		return func() tea.Msg {
			return DependencyDeleteMsg{Kind: kind, Name: name}
		}
	}
	return nil
}

// View renders the list inside a titled pane.
func (l *DepList) View() string {
	paneStyle, titleStyle := styles.PaneStyles(l.focused, l.width)

	title := titleStyle.Render(fmt.Sprintf("%s (%d)", l.kind, len(l.items)))
	return paneStyle.Render(title + "\n" + l.renderItems())
}

func (l *DepList) renderItems() string {
	if len(l.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Render("No dependencies")
	}

	end := l.scrollStart + l.height
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-l.scrollStart+2)
	if l.scrollStart > 0 {
		lines = append(lines, styles.MutedTextStyle.Render("↑ more above"))
	}
	for i := l.scrollStart; i < end; i++ {
		lines = append(lines, l.renderItem(l.items[i], i == l.selected))
	}
	if end < len(l.items) {
		lines = append(lines, styles.MutedTextStyle.Render("↓ more below"))
	}
	return strings.Join(lines, "\n")
}

func (l *DepList) renderItem(name string, isSelected bool) string {
	cursor := " "
	style := styles.ItemStyle
	if isSelected && l.focused {
		cursor = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶")
		style = styles.SelectedItemStyle
	}

	maxName := l.width - 8
	if maxName < 8 {
		maxName = 40
	}
	return fmt.Sprintf("%s %s %s", cursor, styles.BulletIcon, style.Render(truncateString(name, maxName)))
}
