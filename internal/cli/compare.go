package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/pipeline"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	graphPath string
	trace     bool
	noCache   bool
	refresh   bool
}

// compareCommand creates the compare command, the side-by-side view of
// both strategies over the same graph and endpoints.
func (c *CLI) compareCommand() *cobra.Command {
	opts := compareOpts{trace: true}

	cmd := &cobra.Command{
		Use:   "compare <start> <goal>",
		Short: "Run BFS and DFS side by side and compare their traces",
		Long: `Run breadth-first and depth-first search over the same graph and
endpoints, then show both expansion traces and a per-node level summary.

BFS levels are true minimum edge-count distances. DFS depths describe
the discovery tree it happened to walk and can only be larger.

Example:
  frontier compare A F --graph lab.toml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(opts.noCache)
			prog := newProgress(c.Logger)

			cmp, err := runner.Compare(cmd.Context(), pipeline.Options{
				GraphPath: opts.graphPath,
				Start:     args[0],
				Goal:      args[1],
				Refresh:   opts.refresh,
			})
			if err != nil {
				return err
			}
			prog.done("Compared strategies")

			for _, res := range []*pipeline.Result{cmp.BFS, cmp.DFS} {
				printSearchResult(res)
				if opts.trace {
					fmt.Println(renderTraceTable(res.Search))
				}
				fmt.Println()
			}

			fmt.Println(StyleTitle.Render("Level Summary"))
			fmt.Println(renderLevelTable(cmp))
			printInfo("%s", cmp.Summary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "graph file (.toml or .json); built-in graph if empty")
	cmd.Flags().BoolVar(&opts.trace, "trace", opts.trace, "print both expansion trace tables")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache lookup")

	return cmd
}
