package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btreedot/btreedot/pkg/bptree"
)

const exampleDoc = `keys_per_block: 2
tree:
  keys: [3, 6]
  children:
    - [1]
    - [3, 5]
    - [6, 8]
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertFromFile(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Convert(context.Background(), Options{
		Input: writeDoc(t, "tree.yaml", exampleDoc),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !strings.HasPrefix(result.DOT, "digraph btree {") {
		t.Errorf("DOT output missing graph header:\n%s", result.DOT)
	}
	if result.Stats.Nodes != 4 {
		t.Errorf("Stats.Nodes = %d, want 4", result.Stats.Nodes)
	}
	if result.Stats.TreeEdges != 3 {
		t.Errorf("Stats.TreeEdges = %d, want 3", result.Stats.TreeEdges)
	}
	if result.Stats.SiblingEdges != 2 {
		t.Errorf("Stats.SiblingEdges = %d, want 2", result.Stats.SiblingEdges)
	}
}

func TestConvertFromStdin(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Convert(context.Background(), Options{
		Stdin: strings.NewReader(exampleDoc),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Stats.Nodes != 4 {
		t.Errorf("Stats.Nodes = %d, want 4", result.Stats.Nodes)
	}
}

func TestConvertDeterministic(t *testing.T) {
	runner := NewRunner(nil)
	path := writeDoc(t, "tree.yaml", exampleDoc)

	a, err := runner.Convert(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	b, err := runner.Convert(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if a.DOT != b.DOT {
		t.Error("repeated conversions are not byte-identical")
	}
}

func TestConvertWithCheck(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Convert(context.Background(), Options{
		Input: writeDoc(t, "tree.yaml", exampleDoc),
		Check: true,
	})
	if err != nil {
		t.Fatalf("Convert() with check error = %v", err)
	}
}

func TestConvertTOML(t *testing.T) {
	doc := `keys_per_block = 2

[tree]
keys = [3, 6]
children = [[1], [3, 5], [6, 8]]
`
	runner := NewRunner(nil)
	result, err := runner.Convert(context.Background(), Options{
		Input: writeDoc(t, "tree.toml", doc),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Stats.Nodes != 4 {
		t.Errorf("Stats.Nodes = %d, want 4", result.Stats.Nodes)
	}
}

func TestConvertMalformedBlock(t *testing.T) {
	doc := `keys_per_block: 2
tree:
  keys: [3]
  children:
    - [1]
    - just a string
`
	runner := NewRunner(nil)
	result, err := runner.Convert(context.Background(), Options{
		Input: writeDoc(t, "tree.yaml", doc),
	})
	var mbe *bptree.MalformedBlockError
	if !errors.As(err, &mbe) {
		t.Fatalf("Convert() error = %v, want MalformedBlockError", err)
	}
	if mbe.Path != "tree.children[1]" {
		t.Errorf("Path = %q, want %q", mbe.Path, "tree.children[1]")
	}
	if result != nil {
		t.Error("Convert() returned partial output alongside an error")
	}
}

func TestConvertMissingKeysPerBlock(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Convert(context.Background(), Options{
		Input: writeDoc(t, "tree.yaml", "tree: [1, 2]\n"),
	})
	var ce *bptree.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("Convert() error = %v, want ConfigError", err)
	}
}

func TestConvertMissingFile(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Convert(context.Background(), Options{
		Input: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	if err == nil {
		t.Error("Convert() on missing file = nil error")
	}
}

func TestConvertNoInput(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Convert(context.Background(), Options{})
	if err == nil {
		t.Error("Convert() without input or stdin = nil error")
	}
}
