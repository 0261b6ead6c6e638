package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/search"
)

func TestToDOT_Plain(t *testing.T) {
	g, err := graph.FromAdjacency(map[string][]string{"A": {"B"}})
	if err != nil {
		t.Fatalf("FromAdjacency() error = %v", err)
	}

	dot := ToDOT(g, nil, Options{})
	for _, want := range []string{
		"digraph G {",
		`"A" [label="A"];`,
		`"B" [label="B"];`,
		`"A" -> "B";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_SearchOverlay(t *testing.T) {
	g := graph.Default()
	res, err := search.Run(g, "A", "F", search.StrategyBFS)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	dot := ToDOT(g, res, Options{})
	if !strings.Contains(dot, `"A" [label="A", fillcolor="#bbdefb"`) {
		t.Errorf("start node not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"F" [label="F", fillcolor="#a5d6a7"`) {
		t.Errorf("goal node not highlighted:\n%s", dot)
	}
	// Path edge A→B is bold, the unused A→D edge is not.
	if !strings.Contains(dot, `"A" -> "B" [penwidth=2.5`) {
		t.Errorf("path edge not bold:\n%s", dot)
	}
	if !strings.Contains(dot, `"A" -> "D";`) {
		t.Errorf("non-path edge should be plain:\n%s", dot)
	}
}

func TestToDOT_DetailedLevels(t *testing.T) {
	g := graph.Default()
	res, err := search.Run(g, "A", "F", search.StrategyBFS)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	dot := ToDOT(g, res, Options{Detailed: true})
	if !strings.Contains(dot, `label="B\nL1"`) {
		t.Errorf("detailed label missing level:\n%s", dot)
	}
}
