package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/depdoc/internal/deps"
)

func TestNewDepList(t *testing.T) {
	l := NewDepList(deps.Dev)
	if l == nil {
		t.Fatal("expected non-nil DepList")
	}
	if l.Kind() != deps.Dev {
		t.Errorf("expected kind Dev, got %v", l.Kind())
	}
	if l.Len() != 0 {
		t.Errorf("expected empty items, got %d", l.Len())
	}
	if l.Focused() {
		t.Error("expected list to start unfocused")
	}
	if l.SelectedName() != "" {
		t.Errorf("expected no selection, got %q", l.SelectedName())
	}
}

func TestDepList_SetSelection(t *testing.T) {
	l := NewDepList(deps.Runtime)
	l.SetSelection(deps.Selection{"zod": true, "axios": true, "moment": false})

	items := l.Items()
	if len(items) != 2 || items[0] != "axios" || items[1] != "zod" {
		t.Errorf("items = %v, want [axios zod]", items)
	}
}

func TestDepList_Navigation(t *testing.T) {
	l := NewDepList(deps.Runtime)
	l.SetItems([]string{"a", "b", "c"})

	l.MoveUp()
	if l.Selected() != 0 {
		t.Errorf("MoveUp at top: selected = %d, want 0", l.Selected())
	}

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if l.Selected() != 2 {
		t.Errorf("selected = %d, want 2", l.Selected())
	}

	l.MoveDown()
	if l.Selected() != 2 {
		t.Errorf("MoveDown at bottom: selected = %d, want 2", l.Selected())
	}

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if l.SelectedName() != "b" {
		t.Errorf("SelectedName = %q, want b", l.SelectedName())
	}

	l.GoToTop()
	if l.Selected() != 0 {
		t.Errorf("GoToTop: selected = %d", l.Selected())
	}
	l.GoToBottom()
	if l.Selected() != 2 {
		t.Errorf("GoToBottom: selected = %d", l.Selected())
	}
}

func TestDepList_SetItemsClampsSelection(t *testing.T) {
	l := NewDepList(deps.Runtime)
	l.SetItems([]string{"a", "b", "c"})
	l.GoToBottom()

	l.SetItems([]string{"a"})
	if l.Selected() != 0 {
		t.Errorf("selected = %d, want 0", l.Selected())
	}

	l.SetItems(nil)
	if l.Selected() != 0 || l.SelectedName() != "" {
		t.Errorf("empty list: selected = %d, name = %q", l.Selected(), l.SelectedName())
	}
}

func TestDepList_DeleteKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDepList(deps.Dev)
			l.SetItems([]string{"jest", "vite"})
			l.MoveDown()

			cmd := l.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a delete command")
			}
			msg, ok := cmd().(DependencyDeleteMsg)
			if !ok {
				t.Fatal("expected DependencyDeleteMsg")
			}
			if msg.Kind != deps.Dev || msg.Name != "vite" {
				t.Errorf("msg = %+v, want Dev/vite", msg)
			}
		})
	}
}

func TestDepList_DeleteOnEmpty(t *testing.T) {
	l := NewDepList(deps.Runtime)
	if cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}); cmd != nil {
		t.Error("delete on an empty list should do nothing")
	}
}

func TestDepList_Scroll(t *testing.T) {
	l := NewDepList(deps.Runtime)
	l.SetSize(40, 2)
	l.SetItems([]string{"a", "b", "c", "d"})

	l.GoToBottom()
	if l.scrollStart != 2 {
		t.Errorf("scrollStart = %d, want 2", l.scrollStart)
	}

	view := l.View()
	if !strings.Contains(view, "more above") {
		t.Error("expected a more-above indicator")
	}
	l.GoToTop()
	if !strings.Contains(l.View(), "more below") {
		t.Error("expected a more-below indicator")
	}
}

func TestDepList_View(t *testing.T) {
	l := NewDepList(deps.Runtime)
	if !strings.Contains(l.View(), "No dependencies") {
		t.Error("empty list should say so")
	}

	l.SetItems([]string{"axios"})
	l.SetFocused(true)
	view := l.View()
	if !strings.Contains(view, "Dependencies (1)") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "axios") {
		t.Errorf("view missing item:\n%s", view)
	}
}
