// Package render turns graphs and search results into DOT and SVG output.
//
// [ToDOT] emits a Graphviz node-link diagram of a directed graph. When a
// search result is supplied, nodes are colored by their role in the run
// (start, goal, on the final path, merely visited) and path edges are
// drawn bold, so the BFS and DFS explorations can be compared visually.
package render

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/search"
)

// Options configures DOT emission.
type Options struct {
	// Detailed adds discovery levels to node labels when a result is given.
	Detailed bool
}

// ToDOT converts a Digraph to Graphviz DOT format. res may be nil for a
// plain structural diagram. The output can be rendered with [RenderSVG].
func ToDOT(g *graph.Digraph, res *search.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=20];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(nodeAttrs(id, res, opts), ", "))
	}

	buf.WriteString("\n")
	for _, from := range g.Nodes() {
		for _, to := range g.Successors(from) {
			attrs := ""
			if onPath(res, from, to) {
				attrs = " [penwidth=2.5, color=\"#2e7d32\"]"
			}
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", from, to, attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(id string, res *search.Result, opts Options) []string {
	label := id
	if res != nil && opts.Detailed {
		if lvl, ok := res.Levels[id]; ok {
			label = fmt.Sprintf("%s\nL%d", id, lvl)
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if res == nil {
		return attrs
	}

	switch {
	case id == res.Start:
		attrs = append(attrs, "fillcolor=\"#bbdefb\"", "penwidth=2")
	case id == res.Goal && res.Found():
		attrs = append(attrs, "fillcolor=\"#a5d6a7\"", "penwidth=2")
	case slices.Contains(res.Path, id):
		attrs = append(attrs, "fillcolor=\"#c8e6c9\"")
	case discovered(res, id):
		attrs = append(attrs, "fillcolor=\"#eeeeee\"")
	}
	return attrs
}

func discovered(res *search.Result, id string) bool {
	_, ok := res.Levels[id]
	return ok
}

func onPath(res *search.Result, from, to string) bool {
	if res == nil {
		return false
	}
	for i := 0; i+1 < len(res.Path); i++ {
		if res.Path[i] == from && res.Path[i+1] == to {
			return true
		}
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
