// Package extractor chains manifest parsing, selection building and document
// generation behind an explicitly owned State value.
//
// All operations are pure with respect to State: they return a new State
// and never modify the one passed in. The TUI holds the only State.
package extractor

import (
	"context"

	"github.com/dbmrq/depdoc/internal/deps"
	"github.com/dbmrq/depdoc/internal/errors"
	"github.com/dbmrq/depdoc/internal/logging"
	"github.com/dbmrq/depdoc/internal/manifest"
	"github.com/dbmrq/depdoc/internal/readme"
)

// Source names for manifest text that does not come from a file.
const (
	SourceEditor    = "editor"
	SourceClipboard = "clipboard"
)

// State is the widget state: the last input text and the selections derived
// from the last successful parse.
type State struct {
	// Content is the most recent manifest text, parsed or not.
	Content string
	// Source is where Content came from.
	Source string
	// Set holds the current selections.
	Set deps.Set
	// Loaded is true once any manifest has parsed successfully.
	Loaded bool
	// LastError is the error of the most recent Ingest, nil on success.
	LastError error
}

// NewState returns the initial state: nothing loaded and empty selections.
func NewState() State {
	return State{Set: deps.NewSet()}
}

// Extractor holds the fixed inputs of the pipeline.
type Extractor struct {
	exclusions deps.ExclusionList
	generator  *readme.Generator
	logger     *logging.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(e *Extractor) {
		e.generator = readme.NewGenerator(title)
	}
}

// WithLogger sets the logger parse failures are reported to.
// The default is the global logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// New creates an Extractor using the built-in exclusion list.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		exclusions: deps.BuiltIn(),
		generator:  readme.NewGenerator(readme.DefaultTitle),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exclusions returns the exclusion list in use.
func (e *Extractor) Exclusions() deps.ExclusionList {
	return e.exclusions
}

// Title returns the document title in use.
func (e *Extractor) Title() string {
	return e.generator.Title()
}

func (e *Extractor) log() *logging.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logging.Global()
}

// Ingest parses content and, on success, replaces the selections with ones
// built from it. On failure the selections of prev are kept, the failure is
// logged and returned, and only Content, Source and LastError change.
func (e *Extractor) Ingest(prev State, content, source string) (State, error) {
	next := prev
	next.Content = content
	next.Source = source

	format := manifest.FormatJSON
	if source != SourceEditor && source != SourceClipboard {
		format = manifest.FormatForPath(source)
	}

	m, err := manifest.ParseFormat(content, format, source)
	if err != nil {
		ctx := logging.WithSource(context.Background(), source)
		attrs := []any{"error", err.Error()}
		var de *errors.DepdocError
		if errors.As(err, &de) {
			attrs = de.LogAttrs()
		}
		e.log().WithContext(ctx).Warn("manifest parse failed", attrs...)

		next.LastError = err
		return next, err
	}

	next.Set = deps.Build(m, e.exclusions)
	next.Loaded = true
	next.LastError = nil

	runtime, dev := next.Set.Counts()
	e.log().Debug("manifest parsed",
		"source", source,
		"dependencies", runtime,
		"dev_dependencies", dev,
	)
	return next, nil
}

// Delete returns prev with name removed from the selection for kind.
func (e *Extractor) Delete(prev State, kind deps.Kind, name string) State {
	next := prev
	next.Set = prev.Set.Delete(kind, name)
	e.log().Debug("dependency deleted", "section", kind.String(), "name", name)
	return next
}

// Document renders the generated Markdown for s.
func (e *Extractor) Document(s State) string {
	return e.generator.Generate(s.Set)
}
