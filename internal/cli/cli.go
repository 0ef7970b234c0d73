// Package cli implements the btreedot command-line interface.
//
// The CLI wraps the conversion pipeline: it reads a B+ tree description
// from a file or stdin, emits Graphviz DOT text on stdout, and reports
// errors on stderr. Commands are built with cobra; all commands support
// --verbose (-v) for debug-level logging via charmbracelet/log.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/btreedot/btreedot/pkg/buildinfo"
)

// appName is the application name used for the root command and display.
const appName = "btreedot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "btreedot renders B+ tree descriptions as Graphviz DOT graphs",
		Long: `btreedot converts a declarative B+ tree description (YAML or TOML) into
a DOT language graph for rendering with Graphviz. Descriptions may omit
subtrees to keep diagrams compact; omitted blocks are drawn muted and the
leaf sibling chain is cut where adjacency cannot be proven.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.completionCommand())

	return root
}
