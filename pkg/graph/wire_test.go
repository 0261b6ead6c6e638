package graph

import (
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

func TestFromDigraphDeterministic(t *testing.T) {
	g := Default()

	a := FromDigraph(g)
	b := FromDigraph(g)
	if !reflect.DeepEqual(a, b) {
		t.Error("FromDigraph is not deterministic")
	}

	if len(a.Nodes) != 8 || len(a.Edges) != 12 {
		t.Errorf("wire graph has %d nodes %d edges, want 8/12", len(a.Nodes), len(a.Edges))
	}
	// Nodes come out in ascending order.
	if a.Nodes[0].ID != "A" || a.Nodes[7].ID != "H" {
		t.Errorf("node order = %v", a.Nodes)
	}
}

func TestWireRoundTrip(t *testing.T) {
	g := Default()

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "g.json")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !slices.Equal(got.Nodes(), g.Nodes()) {
		t.Errorf("nodes = %v, want %v", got.Nodes(), g.Nodes())
	}
	for _, id := range g.Nodes() {
		if !slices.Equal(got.Successors(id), g.Successors(id)) {
			t.Errorf("successors(%s) = %v, want %v", id, got.Successors(id), g.Successors(id))
		}
	}

	// Marshal of the reread graph matches byte for byte.
	data2, err := Marshal(got)
	if err != nil {
		t.Fatalf("Marshal reread: %v", err)
	}
	if string(data) != string(data2) {
		t.Error("round trip changed the serialized form")
	}
}

func TestToDigraphImplicitEndpoints(t *testing.T) {
	g, err := ToDigraph(Graph{
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{From: "a", To: "b"}},
	})
	if err != nil {
		t.Fatalf("ToDigraph: %v", err)
	}
	if !g.HasNode("b") {
		t.Error("edge target b not created")
	}
}

func TestToDigraphRejectsDuplicates(t *testing.T) {
	_, err := ToDigraph(Graph{Nodes: []Node{{ID: "a"}, {ID: "a"}}})
	if err == nil {
		t.Fatal("duplicate node accepted")
	}
}
