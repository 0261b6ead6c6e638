package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Wire Format
// =============================================================================

// Graph is the canonical serialization format for directed graphs.
// Used for API request/response bodies, files, caching, and run storage.
type Graph struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is a serialized graph vertex.
type Node struct {
	ID string `json:"id" bson:"id"`
}

// Edge represents a directed edge in the serialized graph.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// =============================================================================
// Digraph ↔ Graph Conversion
// =============================================================================

// FromDigraph converts a Digraph to its serialization format.
// Nodes are emitted in ascending ID order and each node's edges in stored
// successor order, so the output is deterministic.
func FromDigraph(g *Digraph) Graph {
	out := Graph{Nodes: make([]Node, 0, g.NodeCount())}
	for _, id := range g.Nodes() {
		out.Nodes = append(out.Nodes, Node{ID: id})
		for _, to := range g.Successors(id) {
			out.Edges = append(out.Edges, Edge{From: id, To: to})
		}
	}
	return out
}

// ToDigraph converts a serialized Graph to a Digraph.
// Edge endpoints missing from the node list are created implicitly,
// matching the "missing key means zero successors" contract.
func ToDigraph(gw Graph) (*Digraph, error) {
	g := New()
	for _, n := range gw.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range gw.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a Digraph to JSON bytes.
func Marshal(g *Digraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a Digraph as indented JSON to an io.Writer.
func Write(g *Digraph, w io.Writer) error {
	return writeTo(g, w)
}

// Read decodes a JSON graph from an io.Reader into a Digraph.
func Read(r io.Reader) (*Digraph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToDigraph(data)
}

// ReadFile reads a JSON file and returns the decoded Digraph.
func ReadFile(path string) (*Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes a Digraph to a JSON file with 0644 permissions.
func WriteFile(g *Digraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

func writeTo(g *Digraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDigraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
