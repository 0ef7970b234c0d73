// Package pipeline orchestrates the conversion of a tree description into
// Graphviz DOT text.
//
// The pipeline has three stages, executed synchronously in one pass:
//
//  1. Load: read and decode the description document (YAML or TOML)
//  2. Build: construct the typed tree model
//  3. Render: emit the DOT graph text
//
// Build completes fully before rendering begins, and the tree is discarded
// after the render pass. An error in any stage aborts the conversion with
// no partial output.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Convert(ctx, pipeline.Options{Input: "tree.yaml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.DOT)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a single conversion.
type Options struct {
	// Input is the path of the description document. Empty means Stdin.
	Input string

	// Stdin is the reader used when Input is empty; descriptions read this
	// way are decoded as YAML. The CLI passes the process stdin.
	Stdin io.Reader

	// Check, when set, round-trips the generated DOT through the graphviz
	// parser and fails the conversion if the output is not consumable.
	Check bool

	// Logger receives per-stage progress lines. Defaults to a discard
	// logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults applies option defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Result contains the outputs of a conversion.
type Result struct {
	// DOT is the generated graph-description text.
	DOT string

	// Stats contains size and timing information.
	Stats Stats
}

// Stats contains conversion statistics.
type Stats struct {
	Nodes        int // blocks emitted, omitted placeholders included
	TreeEdges    int // parent→child edges
	SiblingEdges int // leaf sibling-chain edges that survived suppression

	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}
