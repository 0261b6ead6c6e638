package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/pipeline"
	"github.com/matzehuels/frontier/pkg/search"
)

func TestFormatPath(t *testing.T) {
	if got, want := formatPath([]string{"A", "B", "F"}), "A → B → F"; got != want {
		t.Errorf("formatPath = %q, want %q", got, want)
	}
	if got, want := formatPath(nil), "—"; got != want {
		t.Errorf("formatPath(nil) = %q, want %q", got, want)
	}
}

func TestRenderTraceTable(t *testing.T) {
	res, err := search.Run(graph.Default(), "A", "F", search.StrategyBFS)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := renderTraceTable(res)
	for _, want := range []string{"Step", "Expansion", "Frontier (queue)", "Visited", "Start"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace table missing %q", want)
		}
	}
}

func TestRenderTraceTableStackLabel(t *testing.T) {
	res, err := search.Run(graph.Default(), "A", "F", search.StrategyDFS)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if out := renderTraceTable(res); !strings.Contains(out, "Frontier (stack)") {
		t.Error("trace table missing stack frontier label")
	}
}

func TestRenderLevelTable(t *testing.T) {
	g := graph.Default()
	bfs, err := search.Run(g, "A", "F", search.StrategyBFS)
	if err != nil {
		t.Fatalf("bfs: %v", err)
	}
	dfs, err := search.Run(g, "A", "F", search.StrategyDFS)
	if err != nil {
		t.Fatalf("dfs: %v", err)
	}

	cmp := &pipeline.Comparison{
		BFS: &pipeline.Result{Search: bfs},
		DFS: &pipeline.Result{Search: dfs},
	}
	out := renderLevelTable(cmp)
	for _, want := range []string{"Node", "BFS Level", "DFS Depth"} {
		if !strings.Contains(out, want) {
			t.Errorf("level table missing %q", want)
		}
	}
}

func TestLevelCell(t *testing.T) {
	levels := map[string]int{"A": 0, "F": 3}
	if got := levelCell(levels, "F"); got != "3" {
		t.Errorf("levelCell(F) = %q, want 3", got)
	}
	if got := levelCell(levels, "Z"); got != "—" {
		t.Errorf("levelCell(Z) = %q, want dash", got)
	}
}
