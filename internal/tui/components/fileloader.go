package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/manifest"
	"github.com/dbmrq/depdoc/internal/tui/styles"
)

// FileLoaderSubmittedMsg is sent when the user chooses a manifest file.
type FileLoaderSubmittedMsg struct {
	Path string
}

// FileLoaderCanceledMsg is sent when the user dismisses the loader.
type FileLoaderCanceledMsg struct{}

// FileLoaderPreviewMsg carries the result of reading the typed path in the
// background. Results for a path that is no longer typed are dropped.
type FileLoaderPreviewMsg struct {
	Path     string
	Manifest *manifest.Manifest
	Err      error
}

// FileLoader is a path prompt for loading a manifest from disk. It checks the
// path as it is typed and previews what the file contains.
type FileLoader struct {
	input      textinput.Model
	visible    bool
	width      int
	baseDir    string
	fileExists bool
	pending    string
	preview    *manifest.Manifest
	parseError string
}

// NewFileLoader creates a FileLoader resolving relative paths against baseDir.
func NewFileLoader(baseDir string) *FileLoader {
	ti := textinput.New()
	ti.Placeholder = "package.json"
	ti.CharLimit = 512
	ti.Width = 50

	return &FileLoader{
		input:   ti,
		baseDir: baseDir,
	}
}

// SetWidth sets the component width.
func (f *FileLoader) SetWidth(width int) {
	f.width = width
	if width > 4 {
		f.input.Width = width - 4
	}
}

// Show opens the prompt, cleared and focused.
func (f *FileLoader) Show() tea.Cmd {
	f.visible = true
	f.SetValue("")
	return f.input.Focus()
}

// Hide closes the prompt.
func (f *FileLoader) Hide() {
	f.visible = false
	f.input.Blur()
}

// IsVisible returns whether the prompt is open.
func (f *FileLoader) IsVisible() bool {
	return f.visible
}

// Value returns the typed path.
func (f *FileLoader) Value() string {
	return f.input.Value()
}

// SetValue sets the typed path. The returned command reads the file for the
// preview.
func (f *FileLoader) SetValue(value string) tea.Cmd {
	f.input.SetValue(value)
	return f.check()
}

// FileExists returns whether the typed path names a regular file.
func (f *FileLoader) FileExists() bool {
	return f.fileExists
}

// Preview returns the parsed file, or nil when it does not parse.
func (f *FileLoader) Preview() *manifest.Manifest {
	return f.preview
}

// ParseError returns the problem with the typed path, if any.
func (f *FileLoader) ParseError() string {
	return f.parseError
}

func (f *FileLoader) resolve(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.baseDir, path)
	}
	return path
}

// check validates the typed path with a stat, which never blocks, and returns
// a command that reads and parses it off the update loop.
func (f *FileLoader) check() tea.Cmd {
	f.fileExists = false
	f.pending = ""
	f.preview = nil
	f.parseError = ""

	path := strings.TrimSpace(f.input.Value())
	if path == "" {
		return nil
	}

	full := f.resolve(path)
	info, err := os.Stat(full)
	if err != nil {
		f.parseError = "File not found"
		return nil
	}
	switch {
	case info.IsDir():
		f.parseError = "Path is a directory, not a file"
		return nil
	case !info.Mode().IsRegular():
		f.parseError = "Not a regular file"
		return nil
	}
	f.fileExists = true
	f.pending = full

	return func() tea.Msg {
		_, m, err := manifest.LoadFile(full)
		return FileLoaderPreviewMsg{Path: full, Manifest: m, Err: err}
	}
}

// Update handles messages for the component.
func (f *FileLoader) Update(msg tea.Msg) (*FileLoader, tea.Cmd) {
	if pm, ok := msg.(FileLoaderPreviewMsg); ok {
		if pm.Path == f.pending {
			f.pending = ""
			f.preview = pm.Manifest
			if pm.Err != nil {
				f.parseError = pm.Err.Error()
			}
		}
		return f, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			path := strings.TrimSpace(f.input.Value())
			if path == "" || !f.fileExists {
				return f, nil
			}
			full := f.resolve(path)
			return f, func() tea.Msg {
				return FileLoaderSubmittedMsg{Path: full}
			}
		case "esc":
			return f, func() tea.Msg {
				return FileLoaderCanceledMsg{}
			}
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		cmd = tea.Batch(cmd, f.check())
	}
	return f, cmd
}

// View renders the prompt.
func (f *FileLoader) View() string {
	if !f.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Bold(true)
	b.WriteString(titleStyle.Render("📂 Load Manifest"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(styles.MutedLight).
		Render("Path to package.json or package.yaml:"))
	b.WriteString("\n\n")

	b.WriteString(f.input.View())
	b.WriteString("\n\n")

	switch {
	case f.parseError != "":
		b.WriteString(styles.ErrorTextStyle.Render("⚠ " + f.parseError))
	case f.pending != "":
		b.WriteString(styles.MutedTextStyle.Render("Reading..."))
	case f.preview != nil:
		b.WriteString(styles.SuccessTextStyle.Render(fmt.Sprintf("✓ %d dependencies, %d dev dependencies",
			len(f.preview.Dependencies), len(f.preview.DevDependencies))))
	default:
		b.WriteString(styles.MutedTextStyle.Render("Type a path to preview it"))
	}
	b.WriteString("\n\n")

	b.WriteString(NewShortcutBar(FileLoaderShortcuts...).View())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)
	if f.width > 0 {
		boxStyle = boxStyle.Width(f.width)
	}

	return boxStyle.Render(b.String())
}
