package search

import (
	"slices"

	"github.com/matzehuels/frontier/pkg/graph"
)

// breadthFirst runs a FIFO-frontier traversal from start toward goal.
//
// Successors are enqueued in ascending ID order, so among siblings the
// ordinally smaller node is both discovered and expanded first. Because
// discovery order is breadth-first, the level assigned at discovery time
// equals the minimum edge-count distance from start.
func breadthFirst(g *graph.Digraph, start, goal string) *Result {
	queue := []string{start}
	visited := map[string]bool{start: true}
	parent := map[string]string{start: ""}
	levels := map[string]int{start: 0}

	res := &Result{
		Strategy: StrategyBFS,
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
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		step++

		// The goal is expanded but its successors are never explored,
		// and no trace step is recorded for this final expansion.
		if current == goal {
			reached = true
			break
		}

		for _, next := range g.SortedSuccessors(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			levels[next] = levels[current] + 1
			queue = append(queue, next)
		}

		// The trace renders the queue in ascending order. This is a
		// display choice only; the FIFO order is untouched.
		frontier := slices.Clone(queue)
		slices.Sort(frontier)
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
