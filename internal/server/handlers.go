package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/graph"
	"github.com/matzehuels/frontier/pkg/history"
	"github.com/matzehuels/frontier/pkg/pipeline"
	"github.com/matzehuels/frontier/pkg/search"
)

// defaultRunLimit caps /api/runs responses when no limit is given.
const defaultRunLimit = 50

// searchRequest is the body of POST /api/search and /api/compare.
// Nodes is an optional inline adjacency map; when absent the built-in
// example graph is searched. Strategy is ignored by compare.
type searchRequest struct {
	Start    string              `json:"start"`
	Goal     string              `json:"goal"`
	Strategy string              `json:"strategy,omitempty"`
	Nodes    map[string][]string `json:"nodes,omitempty"`
	Refresh  bool                `json:"refresh,omitempty"`
}

// searchResponse pairs a search result with its archive entry.
type searchResponse struct {
	RunID  string         `json:"run_id"`
	Cached bool           `json:"cached"`
	Result *search.Result `json:"result"`
}

// compareResponse returns both strategies over the same graph.
type compareResponse struct {
	BFS     searchResponse `json:"bfs"`
	DFS     searchResponse `json:"dfs"`
	Summary string         `json:"summary"`
}

// errorResponse is the wire shape of all error replies.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, g, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	strategy := search.StrategyBFS
	if req.Strategy != "" {
		var err error
		if strategy, err = search.ParseStrategy(req.Strategy); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidStrategy, err, "strategy %q", req.Strategy))
			return
		}
	}

	res, err := s.runner.Search(r.Context(), g, req.Start, req.Goal, strategy, req.Refresh)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.archive(r, res))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, g, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	bfs, err := s.runner.Search(r.Context(), g, req.Start, req.Goal, search.StrategyBFS, req.Refresh)
	if err != nil {
		s.writeError(w, err)
		return
	}
	dfs, err := s.runner.Search(r.Context(), g, req.Start, req.Goal, search.StrategyDFS, req.Refresh)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cmp := &pipeline.Comparison{BFS: bfs, DFS: dfs}
	writeJSON(w, http.StatusOK, compareResponse{
		BFS:     s.archive(r, bfs),
		DFS:     s.archive(r, dfs),
		Summary: cmp.Summary(),
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStorage, err, "list runs"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(r.Context(), id)
	if err != nil {
		if stderrors.Is(err, history.ErrNotFound) {
			s.writeError(w, errors.New(errors.ErrCodeRunNotFound, "run %s not found", id))
			return
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeStorage, err, "get run %s", id))
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// decodeSearchRequest parses the body and resolves its graph. On failure
// it writes the error reply and returns ok=false.
func (s *Server) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (*searchRequest, *graph.Digraph, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return nil, nil, false
	}
	if req.Start == "" || req.Goal == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "start and goal are required"))
		return nil, nil, false
	}

	g := graph.Default()
	if len(req.Nodes) > 0 {
		var err error
		if g, err = graph.FromAdjacency(req.Nodes); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidGraph, err, "build graph"))
			return nil, nil, false
		}
	}
	return &req, g, true
}

// archive records the run in the history store and returns the response
// payload. Archive failures are logged but do not fail the request.
func (s *Server) archive(r *http.Request, res *pipeline.Result) searchResponse {
	run := history.NewRun(res.Search)
	if err := s.store.Save(r.Context(), run); err != nil {
		s.logger.Warn("archive run", "id", run.ID, "err", err)
	}
	return searchResponse{RunID: run.ID, Cached: res.Cached, Result: res.Search}
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeNodeNotFound,
		errors.ErrCodeFileNotFound, errors.ErrCodeRunNotFound:
		status = http.StatusNotFound
	case "":
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
