package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/search"
)

func TestNewRun(t *testing.T) {
	res, err := search.Run(graph.Default(), "A", "F", search.StrategyBFS)
	if err != nil {
		t.Fatalf("search.Run() error = %v", err)
	}

	run := NewRun(res)
	if run.ID == "" {
		t.Error("ID is empty")
	}
	if run.Strategy != "bfs" {
		t.Errorf("Strategy = %q, want bfs", run.Strategy)
	}
	if !run.Found {
		t.Error("Found = false, want true")
	}
	if run.GoalLevel != 3 {
		t.Errorf("GoalLevel = %d, want 3", run.GoalLevel)
	}
	if run.Expansions != 8 {
		t.Errorf("Expansions = %d, want 8", run.Expansions)
	}
}

func TestNewRun_Unreachable(t *testing.T) {
	res, err := search.Run(graph.Default(), "F", "A", search.StrategyDFS)
	if err != nil {
		t.Fatalf("search.Run() error = %v", err)
	}

	run := NewRun(res)
	if run.Found {
		t.Error("Found = true, want false")
	}
	if run.GoalLevel != -1 {
		t.Errorf("GoalLevel = %d, want -1", run.GoalLevel)
	}
}

func TestMemoryStore_SaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	run := Run{ID: "r1", CreatedAt: time.Now(), Strategy: "bfs", Start: "A", Goal: "F"}
	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Start != "A" || got.Goal != "F" {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		run := Run{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := s.Save(ctx, run); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	runs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("List() returned %d runs, want 3", len(runs))
	}
	if runs[0].ID != "new" || runs[2].ID != "old" {
		t.Errorf("List() order = [%s %s %s], want newest first", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d runs, want 2", len(limited))
	}
}
