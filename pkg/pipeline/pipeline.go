// Package pipeline provides the load → search → record pipeline shared
// by the CLI and the HTTP API.
//
// Centralizing this logic keeps caching, logging, and history behavior
// identical across entry points. A [Runner] loads a graph, executes one
// or both search strategies with result caching, and reports per-stage
// timings through its logger.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Start: "A", Goal: "F", Strategy: search.StrategyBFS}
//	res, err := runner.Execute(ctx, opts)
package pipeline

import (
	"fmt"

	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/search"
)

// Options configures one pipeline execution.
type Options struct {
	// GraphPath is a .toml manifest or .json wire file. Empty selects
	// the built-in example graph.
	GraphPath string

	// Start and Goal are the traversal endpoints.
	Start string
	Goal  string

	// Strategy selects BFS or DFS. Ignored by Compare.
	Strategy search.Strategy

	// Refresh bypasses the cache lookup and overwrites the stored entry.
	Refresh bool
}

// ValidateAndSetDefaults checks required fields and fills defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Start == "" {
		return errors.New(errors.ErrCodeInvalidInput, "start node is required")
	}
	if o.Goal == "" {
		return errors.New(errors.ErrCodeInvalidInput, "goal node is required")
	}
	if o.Strategy == "" {
		o.Strategy = search.StrategyBFS
	}
	if _, err := search.ParseStrategy(string(o.Strategy)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStrategy, err, "strategy %q", o.Strategy)
	}
	return nil
}

// Result is the outcome of a single-strategy execution.
type Result struct {
	Search *search.Result
	// Cached reports whether the search result came from the cache.
	Cached bool
	// GraphHash identifies the graph the search ran over.
	GraphHash string
}

// Comparison is the outcome of running both strategies over one graph.
type Comparison struct {
	BFS *Result
	DFS *Result
}

// Summary returns a short human-readable comparison line.
func (c *Comparison) Summary() string {
	bfsLevel, bfsOK := c.BFS.Search.GoalLevel()
	dfsLevel, dfsOK := c.DFS.Search.GoalLevel()
	if !bfsOK && !dfsOK {
		return "goal unreachable under both strategies"
	}
	return fmt.Sprintf("goal level: bfs=%d dfs=%d", bfsLevel, dfsLevel)
}
