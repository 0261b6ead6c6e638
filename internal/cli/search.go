package cli

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/pipeline"
	"github.com/matzehuels/frontier/pkg/search"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	graphPath   string // graph file (.toml or .json), built-in graph if empty
	strategy    string // bfs or dfs
	trace       bool   // print the full trace table
	interactive bool   // step through the trace interactively
	jsonOut     bool   // emit the raw result as JSON
	noCache     bool   // disable the result cache
	refresh     bool   // bypass the cache lookup
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{strategy: string(search.StrategyBFS), trace: true}

	cmd := &cobra.Command{
		Use:   "search <start> <goal>",
		Short: "Explore the graph from start toward goal with one strategy",
		Long: `Explore a directed graph from a start node toward a goal node.

Sibling nodes are always expanded in ascending ID order in both
strategies. The run stops the moment the goal leaves the frontier;
its successors are never explored.

Examples:
  frontier search A F                    # BFS over the built-in graph
  frontier search A F --strategy dfs
  frontier search A F --graph lab.toml --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := search.ParseStrategy(opts.strategy)
			if err != nil {
				return err
			}

			runner := c.newRunner(opts.noCache)
			res, err := runner.Execute(cmd.Context(), pipeline.Options{
				GraphPath: opts.graphPath,
				Start:     args[0],
				Goal:      args[1],
				Strategy:  strategy,
				Refresh:   opts.refresh,
			})
			if err != nil {
				return err
			}

			if opts.jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Search)
			}

			if opts.interactive {
				model := newTraceModel(res.Search)
				if _, err := tea.NewProgram(model).Run(); err != nil {
					return fmt.Errorf("run trace viewer: %w", err)
				}
				return nil
			}

			printSearchResult(res)
			if opts.trace {
				fmt.Println(renderTraceTable(res.Search))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "graph file (.toml or .json); built-in graph if empty")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "search strategy (bfs or dfs)")
	cmd.Flags().BoolVar(&opts.trace, "trace", opts.trace, "print the expansion trace table")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "step through the trace interactively")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache lookup")

	return cmd
}

// printSearchResult prints the one-run summary above the trace table.
func printSearchResult(res *pipeline.Result) {
	sr := res.Search
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s: %s %s %s",
		strategyName(sr.Strategy), sr.Start, iconArrow, sr.Goal)))

	if sr.Found() {
		printSuccess("Path found: %s", StyleHighlight.Render(formatPath(sr.Path)))
		if lvl, ok := sr.GoalLevel(); ok {
			printDetail("goal level %d · %d expansions", lvl, sr.Expansions())
		}
	} else {
		printError("No path: goal %s is unreachable from %s", sr.Goal, sr.Start)
		printDetail("%d expansions before the frontier was exhausted", sr.Expansions())
	}
	printCacheStatus(res.Cached)
}

func printCacheStatus(cached bool) {
	status := iconFresh
	style := styleComputed
	if cached {
		status = iconCached
		style = styleCached
	}
	printDetail("result: %s", style.Render(status))
}

func strategyName(s search.Strategy) string {
	if s == search.StrategyDFS {
		return "Depth-First Search"
	}
	return "Breadth-First Search"
}
