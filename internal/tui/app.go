// Package tui provides the terminal user interface for depdoc.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/depdoc/internal/config"
	"github.com/dbmrq/depdoc/internal/deps"
	"github.com/dbmrq/depdoc/internal/errors"
	"github.com/dbmrq/depdoc/internal/export"
	"github.com/dbmrq/depdoc/internal/extractor"
	"github.com/dbmrq/depdoc/internal/logging"
	"github.com/dbmrq/depdoc/internal/manifest"
	"github.com/dbmrq/depdoc/internal/tui/components"
	"github.com/dbmrq/depdoc/internal/watch"
)

// Pane identifies the pane that receives keys.
type Pane int

const (
	PaneEditor Pane = iota
	PaneDependencies
	PaneDevDependencies
	PanePreview
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PaneEditor:
		return "editor"
	case PaneDependencies:
		return "dependencies"
	case PaneDevDependencies:
		return "devDependencies"
	case PanePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Options configures a Model. Zero values select defaults.
type Options struct {
	// Config supplies the document title, export target and watch settings.
	Config *config.Config
	// Extractor overrides the pipeline built from Config.
	Extractor *extractor.Extractor
	// Clipboard overrides the system clipboard.
	Clipboard export.Clipboard
	// BaseDir resolves relative paths typed into the file loader.
	BaseDir string
	// InitialFile is loaded on start when set.
	InitialFile string
}

// Model is the Bubble Tea model for the depdoc TUI. It is the single owner
// of the extractor state; commands only read inputs and report back.
type Model struct {
	// Components
	header      *components.Header
	editor      *components.Editor
	runtimeList *components.DepList
	devList     *components.DepList
	preview     *components.Preview
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	fileLoader  *components.FileLoader

	// Pipeline
	ex       *extractor.Extractor
	state    extractor.State
	document string

	// Collaborators
	cfg       *config.Config
	clipboard export.Clipboard
	watcher   *watch.Watcher
	baseDir   string

	initialFile string

	// Window dimensions
	width  int
	height int

	focus    Pane
	quitting bool
}

// New creates a new TUI model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	ex := opts.Extractor
	if ex == nil {
		ex = extractor.New(extractor.WithTitle(cfg.Readme.Title))
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = export.NewSystemClipboard()
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			baseDir = wd
		} else {
			baseDir = "."
		}
	}

	m := &Model{
		header:      components.NewHeader(),
		editor:      components.NewEditor(),
		runtimeList: components.NewDepList(deps.Runtime),
		devList:     components.NewDepList(deps.Dev),
		preview:     components.NewPreview(),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(ex.Exclusions().Names()...),
		fileLoader:  components.NewFileLoader(baseDir),
		ex:          ex,
		state:       extractor.NewState(),
		cfg:         cfg,
		clipboard:   clip,
		baseDir:     baseDir,
		initialFile: opts.InitialFile,
	}
	m.setFocus(PaneEditor)
	m.refresh()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.editor.Focus()}
	if m.initialFile != "" {
		cmds = append(cmds, loadFileCmd(m.initialFile))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ManifestLoadedMsg:
		return m, m.handleLoaded(msg)

	case ManifestChangedMsg:
		return m, m.handleChanged(msg)

	case CopiedMsg:
		if msg.Err != nil {
			logging.Warn("copy failed", errAttrs(msg.Err)...)
			m.statusBar.SetMessage(msg.Err.Error(), components.MessageError)
			return m, nil
		}
		logging.Info("document copied to clipboard")
		m.statusBar.SetMessage("Copied to clipboard", components.MessageSuccess)
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			logging.Warn("save failed", errAttrs(msg.Err)...)
			m.statusBar.SetMessage(msg.Err.Error(), components.MessageError)
			return m, nil
		}
		logging.Info("document saved", "path", msg.Path)
		m.statusBar.SetMessage("Saved "+m.displayPath(msg.Path), components.MessageSuccess)
		return m, nil

	case components.DependencyDeleteMsg:
		m.state = m.ex.Delete(m.state, msg.Kind, msg.Name)
		m.refresh()
		m.statusBar.SetMessage(fmt.Sprintf("Removed %s from %s", msg.Name, msg.Kind), components.MessageInfo)
		return m, nil

	case components.FileLoaderSubmittedMsg:
		m.fileLoader.Hide()
		m.statusBar.SetMessage("Loading "+m.displayPath(msg.Path), components.MessageInfo)
		return m, loadFileCmd(msg.Path)

	case components.FileLoaderCanceledMsg:
		m.fileLoader.Hide()
		return m, nil

	case components.FileLoaderPreviewMsg:
		var cmd tea.Cmd
		m.fileLoader, cmd = m.fileLoader.Update(msg)
		return m, cmd

	case components.HelpClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// Cursor blink and other internal textarea messages.
	if m.focus == PaneEditor {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.helpOverlay.IsVisible() {
		return m, m.helpOverlay.Update(msg)
	}
	if m.fileLoader.IsVisible() {
		var cmd tea.Cmd
		m.fileLoader, cmd = m.fileLoader.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		m.setFocus((m.focus + 1) % paneCount)
		return m, m.focusCmd()
	case "shift+tab":
		m.setFocus((m.focus + paneCount - 1) % paneCount)
		return m, m.focusCmd()
	case "ctrl+v":
		m.statusBar.SetMessage("Reading clipboard...", components.MessageInfo)
		return m, pasteCmd(m.clipboard)
	case "ctrl+o":
		return m, m.fileLoader.Show()
	case "ctrl+y":
		return m, copyCmd(m.clipboard, m.document)
	case "ctrl+s":
		return m, m.saveCmd()
	}

	if m.focus == PaneEditor {
		return m, m.updateEditor(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.helpOverlay.Toggle()
		return m, nil
	case "c":
		return m, copyCmd(m.clipboard, m.document)
	case "s":
		return m, m.saveCmd()
	}

	switch m.focus {
	case PaneDependencies:
		return m, m.runtimeList.Update(msg)
	case PaneDevDependencies:
		return m, m.devList.Update(msg)
	case PanePreview:
		return m, m.preview.Update(msg)
	}
	return m, nil
}

// updateEditor forwards a key to the editor and re-ingests when the text changed.
func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()
	cmd := m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		// Typing detaches the editor from any loaded file.
		m.stopWatch()
		m.ingest(after, extractor.SourceEditor)
	}
	return cmd
}

// ingest runs the pipeline on content and updates every view of the state.
func (m *Model) ingest(content, source string) error {
	next, err := m.ex.Ingest(m.state, content, source)
	m.state = next
	if err != nil {
		m.editor.SetError(err.Error())
		m.statusBar.SetMessage(err.Error(), components.MessageError)
	} else {
		m.editor.SetError("")
		if source != extractor.SourceEditor {
			m.statusBar.SetMessage("Loaded "+m.displayPath(source), components.MessageSuccess)
		} else {
			m.statusBar.SetMessage("", components.MessageInfo)
		}
	}
	m.refresh()
	return err
}

func (m *Model) handleLoaded(msg ManifestLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("manifest load failed", append(errAttrs(msg.Err), "source", msg.Source)...)
		m.statusBar.SetMessage(msg.Err.Error(), components.MessageError)
		return nil
	}

	m.editor.SetValue(msg.Content)
	err := m.ingest(msg.Content, msg.Source)

	if msg.Source == extractor.SourceClipboard {
		m.stopWatch()
		return nil
	}

	if err == nil {
		logging.Info("manifest loaded", "path", msg.Source)
	}
	// A file that fails to parse is still followed so that fixing it on
	// disk reloads it.
	return m.startWatch(msg.Source)
}

func (m *Model) handleChanged(msg ManifestChangedMsg) tea.Cmd {
	if msg.Watcher == nil || msg.Watcher != m.watcher {
		return nil
	}

	if msg.Change.Err != nil {
		logging.Warn("watched manifest unreadable", errAttrs(msg.Change.Err)...)
		m.statusBar.SetMessage(msg.Change.Err.Error(), components.MessageError)
	} else {
		m.editor.SetValue(msg.Change.Content)
		if err := m.ingest(msg.Change.Content, msg.Change.Path); err == nil {
			m.statusBar.SetMessage("Reloaded "+m.displayPath(msg.Change.Path), components.MessageSuccess)
		}
	}
	return waitForChange(m.watcher)
}

// startWatch replaces the current subscription with one on path.
func (m *Model) startWatch(path string) tea.Cmd {
	m.stopWatch()
	if !m.cfg.Watch.Enabled {
		return nil
	}

	w, err := watch.New(path, m.cfg.Watch.Debounce)
	if err != nil {
		logging.Warn("failed to watch manifest", "path", path, "error", err.Error())
		return nil
	}
	m.watcher = w
	return waitForChange(w)
}

func (m *Model) stopWatch() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		logging.Debug("closing watcher", "error", err.Error())
	}
	m.watcher = nil
}

// Close releases the file watcher. It is safe to call more than once.
func (m *Model) Close() {
	m.stopWatch()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stopWatch()
	return m, tea.Quit
}

// refresh pushes the current state into every component.
func (m *Model) refresh() {
	m.document = m.ex.Document(m.state)
	m.runtimeList.SetSelection(m.state.Set.Runtime)
	m.devList.SetSelection(m.state.Set.Dev)
	m.preview.SetContent(m.document)

	runtime, dev := m.state.Set.Counts()
	source := m.displayPath(m.state.Source)
	m.header.SetData(components.HeaderData{
		Title:           m.ex.Title(),
		Source:          source,
		Dependencies:    runtime,
		DevDependencies: dev,
	})
	m.statusBar.SetSource(source)
	m.statusBar.SetCounts(runtime, dev)
}

func (m *Model) setFocus(p Pane) {
	m.focus = p
	if p == PaneEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.runtimeList.SetFocused(p == PaneDependencies)
	m.devList.SetFocused(p == PaneDevDependencies)
	m.preview.SetFocused(p == PanePreview)

	switch p {
	case PaneEditor:
		m.statusBar.SetShortcuts(components.EditorShortcuts)
	case PanePreview:
		m.statusBar.SetShortcuts(components.PreviewShortcuts)
	default:
		m.statusBar.SetShortcuts(components.ListShortcuts)
	}
}

func (m *Model) focusCmd() tea.Cmd {
	if m.focus == PaneEditor {
		return m.editor.Focus()
	}
	return nil
}

// resize lays out the editor on the left, the two lists top right and the
// preview bottom right. Pane borders take one cell on each side.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)

	body := max(height-2, 6)
	left := width / 2
	right := width - left
	listW := right / 2
	listH := body / 2

	m.editor.SetSize(left-2, body-2)
	m.runtimeList.SetSize(listW-2, listH-5)
	m.devList.SetSize(right-listW-2, listH-5)
	m.preview.SetSize(right-2, body-listH-2)
	m.fileLoader.SetWidth(min(width-4, 70))
	m.helpOverlay.SetSize(min(width-4, 60), min(height-2, 25))
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top, m.runtimeList.View(), m.devList.View())
	right := lipgloss.JoinVertical(lipgloss.Left, lists, m.preview.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), right)

	view := m.header.View() + "\n" + body + "\n" + m.statusBar.View()

	if m.helpOverlay.IsVisible() {
		return m.renderOverlay(view, m.helpOverlay.View())
	}
	if m.fileLoader.IsVisible() {
		return m.renderOverlay(view, m.fileLoader.View())
	}
	return view
}

// renderOverlay renders an overlay centered in the window, or below the base
// view before the window size is known.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width <= 0 || m.height <= 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// displayPath shortens file sources to a path relative to the base directory.
func (m *Model) displayPath(source string) string {
	if source == "" || source == extractor.SourceEditor || source == extractor.SourceClipboard {
		return source
	}
	if rel, err := filepath.Rel(m.baseDir, source); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return source
}

// State returns the current extractor state.
func (m *Model) State() extractor.State {
	return m.state
}

// Document returns the current generated document.
func (m *Model) Document() string {
	return m.document
}

// Focus returns the focused pane.
func (m *Model) Focus() Pane {
	return m.focus
}

func (m *Model) saveCmd() tea.Cmd {
	return saveCmd(m.cfg.Readme.OutputDir, m.cfg.Readme.Filename, m.document)
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := manifest.ReadFile(path)
		return ManifestLoadedMsg{Source: path, Content: content, Err: err}
	}
}

func pasteCmd(clip export.Clipboard) tea.Cmd {
	return func() tea.Msg {
		content, err := clip.ReadAll()
		return ManifestLoadedMsg{Source: extractor.SourceClipboard, Content: content, Err: err}
	}
}

func copyCmd(clip export.Clipboard, document string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clip.WriteAll(document)}
	}
}

func saveCmd(dir, filename, document string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.SaveReadme(dir, filename, document)
		return SavedMsg{Path: path, Err: err}
	}
}

// waitForChange blocks on the next change from w. A closed watcher yields
// no message, which ends the chain.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return ManifestChangedMsg{Watcher: w, Change: c}
	}
}

func errAttrs(err error) []any {
	var de *errors.DepdocError
	if errors.As(err, &de) {
		return de.LogAttrs()
	}
	return []any{"error", err.Error()}
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
