// Package treedoc reads tree description documents.
//
// A document has two top-level fields: keys_per_block, the tree-wide key
// capacity, and tree, the root block entry. Blocks are either bare key
// lists or keys/children mappings; their interpretation lives in
// [github.com/btreedot/btreedot/pkg/bptree], this package only decodes the
// container format.
//
// YAML is the native format (JSON documents also parse, YAML being a
// superset). TOML is accepted for descriptions kept next to TOML tooling
// configs; the format is picked from the file extension.
package treedoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is a decoded tree description. Tree holds the generic decoded
// block structure and stays opaque here.
type Document struct {
	KeysPerBlock int `yaml:"keys_per_block" toml:"keys_per_block"`
	Tree         any `yaml:"tree" toml:"tree"`
}

// Load decodes a document from r in the given format.
func Load(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read description: %w", err)
	}

	var doc Document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode toml description: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode yaml description: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported description format: %q", format)
	}
	return doc, nil
}

// LoadFile reads a description from path, picking the format from the file
// extension (.toml for TOML, anything else YAML).
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open description %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f, FormatForPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FormatForPath returns the format implied by a file name.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}
