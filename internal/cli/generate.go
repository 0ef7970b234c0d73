package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btreedot/btreedot/pkg/pipeline"
)

// generateCommand creates the generate command, the main entry point of the
// tool: description in, DOT text out.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		check  bool
	)

	cmd := &cobra.Command{
		Use:     "generate [description]",
		Aliases: []string{"gen"},
		Short:   "Generate a DOT graph from a B+ tree description",
		Long: `Generate a DOT language graph from a B+ tree description.

The description is read from the given file (YAML, or TOML for .toml
files), or from stdin as YAML when no file is given. The generated graph
text is written to stdout, ready to be piped into Graphviz:

  btreedot generate tree.yaml | dot -Tsvg -o tree.svg

Blocks whose children are left unspecified in the description are drawn
muted, and leaf sibling pointers are only drawn between leaves that are
provably adjacent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGenerate(cmd, input, output, check)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph to a file instead of stdout")
	cmd.Flags().BoolVar(&check, "check", false, "verify the generated graph parses as DOT")

	return cmd
}

// runGenerate executes the conversion and writes the result.
func (c *CLI) runGenerate(cmd *cobra.Command, input, output string, check bool) error {
	runner := pipeline.NewRunner(c.Logger)
	prog := newProgress(c.Logger)

	result, err := runner.Convert(cmd.Context(), pipeline.Options{
		Input:  input,
		Stdin:  cmd.InOrStdin(),
		Check:  check,
		Logger: c.Logger,
	})
	if err != nil {
		printError("Conversion failed")
		return fmt.Errorf("generate: %w", err)
	}

	prog.done(fmt.Sprintf("Converted %d blocks, %d edges",
		result.Stats.Nodes, result.Stats.TreeEdges+result.Stats.SiblingEdges))
	if check {
		printInfo("output parses as valid DOT")
	}

	if output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), result.DOT)
		return err
	}
	if err := os.WriteFile(output, []byte(result.DOT), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	printSuccess("Wrote %s", output)
	return nil
}
