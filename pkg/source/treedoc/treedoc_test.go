package treedoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlDoc = `keys_per_block: 2
tree:
  keys: [3, 6]
  children:
    - [1]
    - [3, 5]
    - [6, 8]
`

const tomlDoc = `keys_per_block = 2

[tree]
keys = [3, 6]
children = [[1], [3, 5], [6, 8]]
`

func TestLoadYAML(t *testing.T) {
	doc, err := Load(strings.NewReader(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.KeysPerBlock != 2 {
		t.Errorf("KeysPerBlock = %d, want 2", doc.KeysPerBlock)
	}
	root, ok := doc.Tree.(map[string]any)
	if !ok {
		t.Fatalf("Tree = %T, want mapping", doc.Tree)
	}
	children, ok := root["children"].([]any)
	if !ok || len(children) != 3 {
		t.Errorf("children = %v, want 3 entries", root["children"])
	}
}

func TestLoadTOML(t *testing.T) {
	doc, err := Load(strings.NewReader(tomlDoc), FormatTOML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.KeysPerBlock != 2 {
		t.Errorf("KeysPerBlock = %d, want 2", doc.KeysPerBlock)
	}
	root, ok := doc.Tree.(map[string]any)
	if !ok {
		t.Fatalf("Tree = %T, want mapping", doc.Tree)
	}
	if _, ok := root["keys"]; !ok {
		t.Error("tree mapping has no keys entry")
	}
}

func TestLoadLeafShorthand(t *testing.T) {
	doc, err := Load(strings.NewReader("keys_per_block: 3\ntree: [1, 2]\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := doc.Tree.([]any); !ok {
		t.Errorf("Tree = %T, want list", doc.Tree)
	}
}

func TestLoadMissingKeysPerBlock(t *testing.T) {
	doc, err := Load(strings.NewReader("tree: [1]\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Left at zero; rejected later by bptree.New as a config error.
	if doc.KeysPerBlock != 0 {
		t.Errorf("KeysPerBlock = %d, want 0", doc.KeysPerBlock)
	}
}

func TestLoadBadSyntax(t *testing.T) {
	if _, err := Load(strings.NewReader("keys_per_block: [unclosed"), FormatYAML); err == nil {
		t.Error("Load() with broken yaml = nil error")
	}
	if _, err := Load(strings.NewReader("= not toml"), FormatTOML); err == nil {
		t.Error("Load() with broken toml = nil error")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load(strings.NewReader(""), Format("ini")); err == nil {
		t.Error("Load() with unsupported format = nil error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"tree.yaml", yamlDoc},
		{"tree.yml", yamlDoc},
		{"tree.toml", tomlDoc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			doc, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if doc.KeysPerBlock != 2 {
				t.Errorf("KeysPerBlock = %d, want 2", doc.KeysPerBlock)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile() on missing file = nil error")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"tree.yaml", FormatYAML},
		{"tree.yml", FormatYAML},
		{"tree.json", FormatYAML},
		{"tree.toml", FormatTOML},
		{"tree.TOML", FormatTOML},
		{"tree", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
