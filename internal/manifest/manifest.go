// Package manifest decodes package manifests (package.json, package.yaml)
// into the two dependency mappings depdoc cares about.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dbmrq/depdoc/internal/errors"
)

// Format identifies the encoding of manifest text.
type Format string

const (
	// FormatJSON is package.json.
	FormatJSON Format = "json"
	// FormatYAML is package.yaml as accepted by pnpm.
	FormatYAML Format = "yaml"
)

// Manifest holds the declared dependency mappings of a package manifest.
// Values are version specifiers; depdoc only uses the keys.
type Manifest struct {
	Dependencies    map[string]string `json:"dependencies" yaml:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies" yaml:"devDependencies"`
}

// Parse decodes JSON manifest text. It is ParseFormat with FormatJSON and
// source "editor".
func Parse(content string) (*Manifest, error) {
	return ParseFormat(content, FormatJSON, "editor")
}

// ParseFormat decodes manifest text in the given format. A leading byte order
// mark is ignored. Absent mappings are returned as empty maps, and a document
// whose top level is not an object declares no dependencies. Version values
// that are not strings are kept as "". Any decoding failure, including a
// dependency field that is not an object, is an errors.ErrParse error and no
// partial manifest is returned.
func ParseFormat(content string, format Format, source string) (*Manifest, error) {
	content = strings.TrimPrefix(content, bom)

	var raw rawManifest
	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML(content, &raw)
	default:
		err = decodeJSON(content, &raw)
	}
	if err != nil {
		return nil, errors.ManifestParseError(source, err)
	}

	return &Manifest{
		Dependencies:    versions(raw.Dependencies),
		DevDependencies: versions(raw.DevDependencies),
	}, nil
}

const bom = "\ufeff"

// rawManifest accepts any version value; only the names matter.
type rawManifest struct {
	Dependencies    map[string]any `json:"dependencies" yaml:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies" yaml:"devDependencies"`
}

func versions(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for name, v := range in {
		spec, _ := v.(string)
		out[name] = spec
	}
	return out
}

func decodeJSON(content string, m *rawManifest) error {
	var raw json.RawMessage
	dec := json.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after top-level value")
	}
	switch {
	case bytes.Equal(raw, []byte("null")):
		return fmt.Errorf("manifest is null")
	case raw[0] != '{':
		return nil
	}
	return json.Unmarshal(raw, m)
}

func decodeYAML(content string, m *rawManifest) error {
	var root yaml.Node
	dec := yaml.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&root); err != nil {
		return err
	}
	if len(root.Content) == 0 {
		return fmt.Errorf("manifest is empty")
	}
	doc := root.Content[0]
	switch {
	case doc.Kind == yaml.ScalarNode && doc.ShortTag() == "!!null":
		return fmt.Errorf("manifest is null")
	case doc.Kind != yaml.MappingNode:
		return nil
	}
	return doc.Decode(m)
}

// FormatForPath picks the manifest format from a file extension.
// .yaml and .yml are YAML; everything else is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// MaxFileSize is the largest manifest file ReadFile accepts.
const MaxFileSize = 4 << 20

// ReadFile reads the manifest file at path and returns its raw text. Only
// regular files up to MaxFileSize are read, so FIFOs and devices fail at once
// instead of blocking. Read failures are errors.ErrIO errors.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.ManifestReadError(path, err)
	}
	if err := checkRegular(info); err != nil {
		return "", errors.ManifestReadError(path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.ManifestReadError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", errors.ManifestReadError(path, err)
	}
	if len(data) > MaxFileSize {
		return "", errors.ManifestReadError(path, fmt.Errorf("file is larger than %d bytes", MaxFileSize))
	}
	return string(data), nil
}

// checkRegular reports why a file cannot be read as a manifest: it is a
// directory or not a regular file.
func checkRegular(info os.FileInfo) error {
	switch {
	case info.IsDir():
		return fmt.Errorf("path is a directory")
	case !info.Mode().IsRegular():
		return fmt.Errorf("not a regular file")
	}
	return nil
}

// LoadFile reads and parses the manifest file at path.
func LoadFile(path string) (string, *Manifest, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	m, err := ParseFormat(content, FormatForPath(path), path)
	if err != nil {
		return content, nil, err
	}
	return content, m, nil
}
