package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/frontier/pkg/cache"
	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/observability"
	"github.com/matzehuels/frontier/pkg/search"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// LoadGraph resolves the graph for the given options: a manifest or wire
// file when GraphPath is set, otherwise the built-in example graph.
func (r *Runner) LoadGraph(opts Options) (*graph.Digraph, error) {
	if opts.GraphPath == "" {
		return graph.Default(), nil
	}

	start := time.Now()
	g, err := graph.Load(opts.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	r.Logger.Debug("loaded graph",
		"path", opts.GraphPath,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))
	return g, nil
}

// Execute loads the graph and runs the configured strategy with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g, err := r.LoadGraph(opts)
	if err != nil {
		return nil, err
	}
	return r.Search(ctx, g, opts.Start, opts.Goal, opts.Strategy, opts.Refresh)
}

// Compare loads the graph once and runs both strategies over it.
func (r *Runner) Compare(ctx context.Context, opts Options) (*Comparison, error) {
	opts.Strategy = search.StrategyBFS
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g, err := r.LoadGraph(opts)
	if err != nil {
		return nil, err
	}

	bfs, err := r.Search(ctx, g, opts.Start, opts.Goal, search.StrategyBFS, opts.Refresh)
	if err != nil {
		return nil, err
	}
	dfs, err := r.Search(ctx, g, opts.Start, opts.Goal, search.StrategyDFS, opts.Refresh)
	if err != nil {
		return nil, err
	}
	return &Comparison{BFS: bfs, DFS: dfs}, nil
}

// Search runs one strategy over an already-loaded graph with caching.
func (r *Runner) Search(ctx context.Context, g *graph.Digraph, start, goal string, strategy search.Strategy, refresh bool) (*Result, error) {
	graphData, err := graph.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal graph: %w", err)
	}
	key := cache.ResultKey(graphData, start, goal, string(strategy))

	result := &Result{GraphHash: cache.Hash(graphData)}

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached search.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				r.Logger.Debug("search result from cache",
					"strategy", strategy, "start", start, "goal", goal)
				result.Search = &cached
				result.Cached = true
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	searchStart := time.Now()
	observability.Search().OnSearchStart(ctx, string(strategy), start, goal)
	res, err := search.Run(g, start, goal, strategy)
	duration := time.Since(searchStart)
	observability.Search().OnSearchComplete(ctx, string(strategy), expansionCount(res), duration, err)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	r.Logger.Info("search finished",
		"strategy", strategy,
		"start", start,
		"goal", goal,
		"found", res.Found(),
		"expansions", res.Expansions(),
		"duration", duration)

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err == nil {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}

	result.Search = res
	return result, nil
}

func expansionCount(res *search.Result) int {
	if res == nil {
		return 0
	}
	return res.Expansions()
}
