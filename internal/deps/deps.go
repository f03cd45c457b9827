// Package deps derives dependency selections from a parsed manifest.
//
// A Selection maps a dependency name to whether it should appear in the
// generated document. Selections are built fresh from every successfully
// parsed manifest and only ever change by deletion, which sets a flag to
// false. Names on the exclusion list never enter a selection.
package deps

import (
	"sort"

	"github.com/dbmrq/depdoc/internal/manifest"
)

// builtIn lists packages treated as provided by the runtime environment.
var builtIn = []string{
	"react",
	"react-dom",
	"lodash",
}

// ExclusionList is an ordered set of dependency names that are never selected.
type ExclusionList struct {
	names []string
	set   map[string]struct{}
}

// NewExclusionList creates an ExclusionList from names, keeping their order.
func NewExclusionList(names ...string) ExclusionList {
	l := ExclusionList{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if _, dup := l.set[n]; dup {
			continue
		}
		l.set[n] = struct{}{}
		l.names = append(l.names, n)
	}
	return l
}

// BuiltIn returns the compiled-in exclusion list.
func BuiltIn() ExclusionList {
	return NewExclusionList(builtIn...)
}

// Contains reports whether name is excluded.
func (l ExclusionList) Contains(name string) bool {
	_, ok := l.set[name]
	return ok
}

// Names returns the excluded names in their declared order.
func (l ExclusionList) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Kind selects which of the two selections an operation applies to.
type Kind int

const (
	// Runtime refers to the manifest's "dependencies".
	Runtime Kind = iota
	// Dev refers to the manifest's "devDependencies".
	Dev
)

// String returns the section name used in the generated document.
func (k Kind) String() string {
	if k == Dev {
		return "Development Dependencies"
	}
	return "Dependencies"
}

// Selection maps a dependency name to its included flag.
type Selection map[string]bool

// Included returns the names whose flag is true, sorted.
func (s Selection) Included() []string {
	names := make([]string, 0, len(s))
	for name, ok := range s {
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of s.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Set holds the runtime and development selections derived from one manifest.
type Set struct {
	Runtime Selection
	Dev     Selection
}

// NewSet returns a Set with two empty selections.
func NewSet() Set {
	return Set{Runtime: Selection{}, Dev: Selection{}}
}

// Build derives a Set from m. Every key of m.Dependencies and
// m.DevDependencies that is not excluded becomes an included entry.
func Build(m *manifest.Manifest, excl ExclusionList) Set {
	set := NewSet()
	if m == nil {
		return set
	}
	for name := range m.Dependencies {
		if !excl.Contains(name) {
			set.Runtime[name] = true
		}
	}
	for name := range m.DevDependencies {
		if !excl.Contains(name) {
			set.Dev[name] = true
		}
	}
	return set
}

// Get returns the selection for kind.
func (s Set) Get(kind Kind) Selection {
	if kind == Dev {
		return s.Dev
	}
	return s.Runtime
}

// Delete returns a copy of s in which name is no longer included in the
// selection for kind. Deleting an absent or already deleted name is a no-op;
// it never adds an entry.
func (s Set) Delete(kind Kind, name string) Set {
	out := Set{Runtime: s.Runtime.Clone(), Dev: s.Dev.Clone()}
	sel := out.Get(kind)
	if _, ok := sel[name]; ok {
		sel[name] = false
	}
	return out
}

// Counts returns the number of included runtime and development entries.
func (s Set) Counts() (runtime, dev int) {
	for _, ok := range s.Runtime {
		if ok {
			runtime++
		}
	}
	for _, ok := range s.Dev {
		if ok {
			dev++
		}
	}
	return runtime, dev
}
