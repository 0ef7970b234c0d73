package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/btreedot/btreedot/pkg/bptree"
	"github.com/btreedot/btreedot/pkg/observability"
	"github.com/btreedot/btreedot/pkg/render/dot"
	"github.com/btreedot/btreedot/pkg/source/treedoc"
)

// Runner executes conversions. It is stateless apart from its logger, so a
// single Runner can serve any number of sequential conversions.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Convert runs the complete load → build → render pipeline. Any error
// aborts the conversion; no partial DOT is ever returned.
func (r *Runner) Convert(ctx context.Context, opts Options) (*Result, error) {
	opts.ValidateAndSetDefaults()
	logger := opts.Logger
	hooks := observability.Convert()

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Input)
	doc, err := r.load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks.OnLoadComplete(ctx, opts.Input, doc.KeysPerBlock, result.Stats.LoadTime, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded description",
		"input", inputName(opts.Input),
		"keys_per_block", doc.KeysPerBlock,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx)
	tree, err := bptree.New(doc.KeysPerBlock, doc.Tree)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, result.Stats.BuildTime, err)
		return nil, fmt.Errorf("build tree: %w", err)
	}
	nodes := tree.Nodes()
	hooks.OnBuildComplete(ctx, len(nodes), result.Stats.BuildTime, nil)

	result.Stats.Nodes = len(nodes)
	for _, n := range nodes {
		result.Stats.TreeEdges += len(n.Children)
	}
	for _, group := range tree.LeafGroups() {
		if len(group) > 1 {
			result.Stats.SiblingEdges += len(group) - 1
		}
	}
	logger.Debug("built tree model",
		"nodes", result.Stats.Nodes,
		"edges", result.Stats.TreeEdges,
		"sibling_edges", result.Stats.SiblingEdges,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, len(nodes))
	result.DOT = dot.Generate(tree)
	if opts.Check {
		if err := dot.Check(result.DOT); err != nil {
			result.Stats.RenderTime = time.Since(renderStart)
			hooks.OnRenderComplete(ctx, 0, result.Stats.RenderTime, err)
			return nil, fmt.Errorf("check output: %w", err)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, len(result.DOT), result.Stats.RenderTime, nil)

	logger.Debug("rendered graph",
		"bytes", len(result.DOT),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) load(opts Options) (treedoc.Document, error) {
	if opts.Input == "" {
		if opts.Stdin == nil {
			return treedoc.Document{}, fmt.Errorf("no input document and no stdin reader")
		}
		return treedoc.Load(opts.Stdin, treedoc.FormatYAML)
	}
	return treedoc.LoadFile(opts.Input)
}

func inputName(input string) string {
	if input == "" {
		return "stdin"
	}
	return input
}
