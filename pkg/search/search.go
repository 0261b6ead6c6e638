package search

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/frontier/pkg/graph"
)

var (
	// ErrUnknownStrategy is returned by [Run] and [ParseStrategy] for a
	// strategy that is neither BFS nor DFS.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrEmptyNodeID is returned by [Run] when start or goal is empty.
	ErrEmptyNodeID = errors.New("start and goal must not be empty")
)

// Strategy selects the frontier discipline for a traversal.
type Strategy string

const (
	// StrategyBFS explores with a FIFO queue. Discovery levels are the
	// minimum edge-count distance from the start.
	StrategyBFS Strategy = "bfs"

	// StrategyDFS explores with a LIFO stack. Levels are depths in the
	// discovery tree actually walked, which may exceed the true distance.
	StrategyDFS Strategy = "dfs"
)

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyBFS, StrategyDFS}

// ParseStrategy converts a user-supplied string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategyBFS:
		return StrategyBFS, nil
	case StrategyDFS:
		return StrategyDFS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// FrontierLabel names the frontier structure for display ("queue" or "stack").
func (s Strategy) FrontierLabel() string {
	if s == StrategyDFS {
		return "stack"
	}
	return "queue"
}

// StartMarker is the expansion label of the initial trace step, recorded
// before any node has been expanded.
const StartMarker = "Start"

// Step is one immutable record of the expansion trace. Step 0 captures
// the initial state; every later step captures the state right after one
// node was expanded and its undiscovered successors were discovered.
//
// Frontier and Visited are point-in-time copies owned by the step; they
// never alias the traversal's live structures. Frontier is display
// ordered (ascending for BFS, top-of-stack first for DFS) and Visited is
// always sorted ascending.
type Step struct {
	Index     int      `json:"step" bson:"step"`
	Expansion string   `json:"expansion" bson:"expansion"`
	Level     int      `json:"level" bson:"level"`
	Frontier  []string `json:"frontier" bson:"frontier"`
	Visited   []string `json:"visited" bson:"visited"`
}

// Result is the outcome of one traversal.
type Result struct {
	Strategy Strategy `json:"strategy" bson:"strategy"`
	Start    string   `json:"start" bson:"start"`
	Goal     string   `json:"goal" bson:"goal"`

	// Path is the start→goal node sequence, or empty when the goal was
	// never expanded.
	Path []string `json:"path" bson:"path"`

	// Trace holds one Step per recorded expansion plus the initial step.
	// The expansion that pops the goal terminates the loop before a step
	// is recorded for it, so the goal never appears as an Expansion.
	Trace []Step `json:"trace" bson:"trace"`

	// Levels maps every discovered node to its discovery level
	// (start = 0, child = parent + 1). Undiscovered nodes are absent,
	// including an unreachable goal.
	Levels map[string]int `json:"levels" bson:"levels"`
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// GoalLevel returns the goal's discovery level and whether the goal was
// discovered at all.
func (r *Result) GoalLevel() (int, bool) {
	lvl, ok := r.Levels[r.Goal]
	return lvl, ok
}

// Expansions returns the number of nodes expanded, including the final
// goal expansion that is not recorded as a trace step.
func (r *Result) Expansions() int {
	n := len(r.Trace) - 1
	if r.Found() {
		n++
	}
	return n
}

// Run executes one traversal of g from start toward goal.
//
// Both strategies share the same contract: nodes are marked visited at
// discovery time, parent and level assignments are never overwritten,
// and the loop stops the moment the goal is dequeued or popped, without
// exploring the goal's successors. Start and goal need not exist as
// graph keys; a missing key behaves as a node with zero successors.
//
// Run is a pure function of (g, start, goal, strategy): it builds all
// its working state fresh, so concurrent calls are safe as long as g is
// not mutated.
func Run(g *graph.Digraph, start, goal string, strategy Strategy) (*Result, error) {
	if start == "" || goal == "" {
		return nil, ErrEmptyNodeID
	}
	switch strategy {
	case StrategyBFS:
		return breadthFirst(g, start, goal), nil
	case StrategyDFS:
		return depthFirst(g, start, goal), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// reconstructPath walks parent pointers from goal back to the parentless
// node and reverses the chain. reached guards against probing the parent
// map alone: the start's entry always exists, so callers must pass
// whether the goal-stop condition actually fired.
func reconstructPath(parent map[string]string, goal string, reached bool) []string {
	if !reached {
		return nil
	}
	var path []string
	for cur := goal; cur != ""; cur = parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// visitedSnapshot returns the visited set as an owned, sorted slice.
func visitedSnapshot(visited map[string]bool) []string {
	out := make([]string, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
