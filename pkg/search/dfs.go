package search

import (
	"slices"

	"github.com/matzehuels/frontier/pkg/graph"
)

// depthFirst runs a LIFO-frontier traversal from start toward goal.
//
// The sibling tie-break contract is the same as for BFS: the ordinally
// smaller sibling is expanded first. A stack reverses push order on pop,
// so successors are pushed in descending ID order to leave the smallest
// on top. Levels are depths in the discovery tree actually walked and
// may overstate the true shortest distance.
func depthFirst(g *graph.Digraph, start, goal string) *Result {
	stack := []string{start}
	visited := map[string]bool{start: true}
	parent := map[string]string{start: ""}
	levels := map[string]int{start: 0}

	res := &Result{
		Strategy: StrategyDFS,
		Start:    start,
		Goal:     goal,
		Levels:   levels,
	}
	res.Trace = append(res.Trace, Step{
		Index:     0,
		Expansion: StartMarker,
		Level:     0,
		Frontier:  []string{start},
		Visited:   visitedSnapshot(visited),
	})

	step := 0
	reached := false
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		step++

		if current == goal {
			reached = true
			break
		}

		// Descending push order; visited-at-discovery also makes cycles
		// safe, a node is never pushed twice.
		succ := g.SortedSuccessors(current)
		slices.Reverse(succ)
		for _, next := range succ {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			levels[next] = levels[current] + 1
			stack = append(stack, next)
		}

		// The trace renders the stack top first, the order nodes would
		// be popped. Internal storage order is untouched.
		frontier := slices.Clone(stack)
		slices.Reverse(frontier)
		res.Trace = append(res.Trace, Step{
			Index:     step,
			Expansion: current,
			Level:     levels[current],
			Frontier:  frontier,
			Visited:   visitedSnapshot(visited),
		})
	}

	res.Path = reconstructPath(parent, goal, reached)
	return res
}
