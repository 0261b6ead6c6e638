package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Digraph.AddNode] and [Digraph.AddEdge]
	// when a node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Digraph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Digraph is a directed graph stored as an adjacency structure:
// node ID → ordered list of successor IDs. Cycles are allowed, and a
// node that appears only as an edge target behaves as a node with zero
// successors.
//
// The zero value is not usable - use New to create a valid instance.
// Digraph is safe for concurrent reads once construction is finished,
// but not for concurrent mutation.
type Digraph struct {
	succ map[string][]string
}

// New creates an empty directed graph.
func New() *Digraph {
	return &Digraph{succ: make(map[string][]string)}
}

// FromAdjacency builds a graph from an adjacency map. Keys are inserted
// in ascending order so construction is deterministic regardless of map
// iteration order. Edge targets missing from the key set are added as
// nodes with zero successors.
func FromAdjacency(adj map[string][]string) (*Digraph, error) {
	g := New()
	for _, id := range slices.Sorted(maps.Keys(adj)) {
		if !g.HasNode(id) {
			if err := g.AddNode(id); err != nil {
				return nil, err
			}
		}
		for _, to := range adj[id] {
			if err := g.AddEdge(id, to); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// AddNode adds a node with no successors.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if the
// node already exists.
func (g *Digraph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.succ[id]; exists {
		return ErrDuplicateNodeID
	}
	g.succ[id] = nil
	return nil
}

// AddEdge adds a directed edge from → to, appending to the source's
// successor list. Endpoints that don't exist yet are created. Parallel
// edges are allowed; traversals never discover a node twice regardless.
func (g *Digraph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.succ[to]; !ok {
		g.succ[to] = nil
	}
	if _, ok := g.succ[from]; !ok {
		g.succ[from] = nil
	}
	g.succ[from] = append(g.succ[from], to)
	return nil
}

// HasNode reports whether the node exists in the graph.
func (g *Digraph) HasNode(id string) bool {
	_, ok := g.succ[id]
	return ok
}

// Successors returns the successor list of the node in stored order.
// Unknown nodes have zero successors. The returned slice should not be
// modified - use it as a read-only view.
func (g *Digraph) Successors(id string) []string { return g.succ[id] }

// SortedSuccessors returns a copy of the node's successors sorted in
// ascending ID order. This is the sibling tie-break order used by the
// traversal strategies. Unknown nodes yield nil.
func (g *Digraph) SortedSuccessors(id string) []string {
	out := slices.Clone(g.succ[id])
	slices.Sort(out)
	return out
}

// Nodes returns all node IDs in ascending order.
func (g *Digraph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.succ))
}

// NodeCount returns the number of nodes in the graph.
func (g *Digraph) NodeCount() int { return len(g.succ) }

// EdgeCount returns the number of edges in the graph.
func (g *Digraph) EdgeCount() int {
	n := 0
	for _, s := range g.succ {
		n += len(s)
	}
	return n
}

// Default returns the built-in eight node example graph used by the CLI
// when no graph file is given. It contains the A↔C↔D cycle, a sink F,
// and two routes from the upper half down to F.
func Default() *Digraph {
	g, _ := FromAdjacency(map[string][]string{
		"A": {"D", "B"},
		"B": {"C", "E", "G"},
		"C": {"A"},
		"D": {"C", "A"},
		"E": {"H"},
		"F": {},
		"G": {"F"},
		"H": {"G", "F"},
	})
	return g
}
