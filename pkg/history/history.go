// Package history provides an archive of completed search runs.
//
// Each finished search can be recorded as a [Run] so past invocations
// are listable through the API. Two [Store] backends are provided:
//
//   - memory: in-process storage for development and testing
//   - mongo: MongoDB-backed storage for server deployments
package history

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/frontier/pkg/search"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// Run is one archived search invocation.
type Run struct {
	ID        string    `json:"id" bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	Strategy string   `json:"strategy" bson:"strategy"`
	Start    string   `json:"start" bson:"start"`
	Goal     string   `json:"goal" bson:"goal"`
	Found    bool     `json:"found" bson:"found"`
	Path     []string `json:"path" bson:"path"`

	// GoalLevel is -1 when the goal was never discovered.
	GoalLevel  int `json:"goal_level" bson:"goal_level"`
	Expansions int `json:"expansions" bson:"expansions"`
}

// NewRun builds a Run record from a search result with a fresh ID.
func NewRun(res *search.Result) Run {
	goalLevel := -1
	if lvl, ok := res.GoalLevel(); ok {
		goalLevel = lvl
	}
	return Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Strategy:   string(res.Strategy),
		Start:      res.Start,
		Goal:       res.Goal,
		Found:      res.Found(),
		Path:       res.Path,
		GoalLevel:  goalLevel,
		Expansions: res.Expansions(),
	}
}

// Store persists run records.
type Store interface {
	// Save stores a run record.
	Save(ctx context.Context, run Run) error

	// List returns up to limit runs, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Run, error)

	// Get returns the run with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-process Store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a run record.
func (s *MemoryStore) Save(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// List returns up to limit runs, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns the run with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.runs {
		if s.runs[i].ID == id {
			run := s.runs[i]
			return &run, nil
		}
	}
	return nil, ErrNotFound
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
