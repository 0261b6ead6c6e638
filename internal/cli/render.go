package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/render"
	"github.com/matzehuels/frontier/pkg/search"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	graphPath string // graph file (.toml or .json), built-in graph if empty
	output    string // output file path; derived from graph path if empty
	format    string // dot or svg
	strategy  string // overlay a search run when start/goal are given
	detailed  bool   // annotate nodes with discovery levels
}

// renderCommand creates the render command for visualizing graphs.
// With no positional arguments it emits a plain structural diagram;
// with <start> <goal> it overlays the run of the chosen strategy.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, strategy: string(search.StrategyBFS)}

	cmd := &cobra.Command{
		Use:   "render [start goal]",
		Short: "Render the graph as a DOT or SVG diagram",
		Long: `Render a directed graph as a Graphviz diagram.

Given a start and goal node, the diagram overlays a search run: the
start and goal are highlighted, path edges are drawn bold, and visited
nodes are shaded. With --detailed each discovered node is annotated
with its level.

Examples:
  frontier render                          # plain diagram of the built-in graph
  frontier render A F -s dfs -o run.svg
  frontier render A F --format dot --detailed`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return errors.New(errors.ErrCodeInvalidInput, "provide both start and goal, or neither")
			}
			if opts.format != formatDOT && opts.format != formatSVG {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format %q (must be dot or svg)", opts.format)
			}

			g, err := c.loadGraph(opts.graphPath)
			if err != nil {
				return err
			}

			var res *search.Result
			if len(args) == 2 {
				strategy, err := search.ParseStrategy(opts.strategy)
				if err != nil {
					return err
				}
				res, err = search.Run(g, args[0], args[1], strategy)
				if err != nil {
					return err
				}
			}

			dot := render.ToDOT(g, res, render.Options{Detailed: opts.detailed})

			data := []byte(dot)
			if opts.format == formatSVG {
				prog := newProgress(c.Logger)
				data, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			path := outputPath(opts.output, opts.graphPath, opts.format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
			}

			printSuccess("Rendered %s", opts.format)
			printFile(path)
			printStats(g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "graph file (.toml or .json); built-in graph if empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; derived from the graph file if empty")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (dot or svg)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "strategy for the overlaid run (bfs or dfs)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "annotate nodes with discovery levels")

	return cmd
}

// loadGraph loads a graph file, falling back to the built-in graph.
func (c *CLI) loadGraph(path string) (*graph.Digraph, error) {
	if path == "" {
		return graph.Default(), nil
	}
	c.Logger.Debugf("Loading graph from %s", path)
	return graph.Load(path)
}

// outputPath derives the output file path from the flags. An explicit
// output wins; otherwise the graph file's extension is swapped for the
// format, and the built-in graph renders to graph.<format>.
func outputPath(output, graphPath, format string) string {
	if output != "" {
		return output
	}
	if graphPath == "" {
		return "graph." + format
	}
	return strings.TrimSuffix(graphPath, filepath.Ext(graphPath)) + "." + format
}
