package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/internal/server"
	"github.com/matzehuels/frontier/pkg/cache"
	"github.com/matzehuels/frontier/pkg/history"
	"github.com/matzehuels/frontier/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // shared result cache; file cache if empty
	mongoURI  string // run archive backend; in-memory if empty
	mongoDB   string // mongo database name
	noCache   bool   // disable the result cache
}

// serveCommand creates the serve command, the HTTP API entry point.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", mongoDB: appName}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Long: `Serve the graph search API over HTTP.

Endpoints:
  POST /api/search    run one strategy, archive the run
  POST /api/compare   run both strategies over the same graph
  GET  /api/runs      list archived runs, newest first
  GET  /api/runs/{id} fetch one archived run
  GET  /healthz       liveness probe

By default results are cached on disk and runs are archived in memory.
--redis shares the result cache between instances; --mongo-uri makes
the run archive durable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			resultCache := newCache(opts.noCache)
			if opts.redisAddr != "" && !opts.noCache {
				rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
				if err != nil {
					return err
				}
				c.Logger.Info("using redis result cache", "addr", opts.redisAddr)
				resultCache = rc
			}
			defer resultCache.Close()

			var store history.Store = history.NewMemoryStore()
			if opts.mongoURI != "" {
				ms, err := history.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
				if err != nil {
					return err
				}
				c.Logger.Info("using mongo run archive", "database", opts.mongoDB)
				store = ms
			}
			defer store.Close(ctx)

			runner := pipeline.NewRunner(resultCache, c.Logger)
			srv := server.New(runner, store, c.Logger)
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared result cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "mongodb uri for a durable run archive")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "mongodb database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}
