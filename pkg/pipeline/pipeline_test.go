package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/frontier/pkg/cache"
	"github.com/matzehuels/frontier/pkg/search"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return NewRunner(c, log.New(io.Discard))
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	opts := Options{Start: "A", Goal: "F"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Strategy != search.StrategyBFS {
		t.Errorf("default Strategy = %q, want bfs", opts.Strategy)
	}

	bad := Options{Start: "A", Goal: "F", Strategy: "greedy"}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid strategy accepted")
	}
	missing := Options{Goal: "F"}
	if err := missing.ValidateAndSetDefaults(); err == nil {
		t.Error("missing start accepted")
	}
}

func TestRunner_Execute(t *testing.T) {
	r := testRunner(t)

	res, err := r.Execute(context.Background(), Options{Start: "A", Goal: "F", Strategy: search.StrategyBFS})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Cached {
		t.Error("first Execute() Cached = true, want false")
	}
	wantPath := []string{"A", "B", "G", "F"}
	if !reflect.DeepEqual(res.Search.Path, wantPath) {
		t.Errorf("Path = %v, want %v", res.Search.Path, wantPath)
	}
	if res.GraphHash == "" {
		t.Error("GraphHash is empty")
	}
}

func TestRunner_ExecuteCacheHit(t *testing.T) {
	r := testRunner(t)
	opts := Options{Start: "A", Goal: "F", Strategy: search.StrategyDFS}
	ctx := context.Background()

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.Cached {
		t.Error("second Execute() Cached = false, want true")
	}
	if !reflect.DeepEqual(first.Search.Trace, second.Search.Trace) {
		t.Error("cached trace differs from computed trace")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.Cached {
		t.Error("refresh Execute() Cached = true, want false")
	}
}

func TestRunner_Compare(t *testing.T) {
	r := testRunner(t)

	cmp, err := r.Compare(context.Background(), Options{Start: "A", Goal: "F"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.BFS.Search.Strategy != search.StrategyBFS {
		t.Errorf("BFS result strategy = %q", cmp.BFS.Search.Strategy)
	}
	if cmp.DFS.Search.Strategy != search.StrategyDFS {
		t.Errorf("DFS result strategy = %q", cmp.DFS.Search.Strategy)
	}
	if got := cmp.Summary(); got != "goal level: bfs=3 dfs=4" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestRunner_LoadGraphFromManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.toml")
	manifest := `name = "tiny"

[nodes]
X = ["Y"]
Y = []
`
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r := testRunner(t)
	res, err := r.Execute(context.Background(), Options{
		GraphPath: path,
		Start:     "X",
		Goal:      "Y",
		Strategy:  search.StrategyBFS,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !reflect.DeepEqual(res.Search.Path, []string{"X", "Y"}) {
		t.Errorf("Path = %v, want [X Y]", res.Search.Path)
	}
}

func TestRunner_LoadGraphBadPath(t *testing.T) {
	r := testRunner(t)
	_, err := r.Execute(context.Background(), Options{
		GraphPath: filepath.Join(t.TempDir(), "missing.toml"),
		Start:     "A",
		Goal:      "F",
	})
	if err == nil {
		t.Error("Execute() with missing graph file: error = nil")
	}
}
