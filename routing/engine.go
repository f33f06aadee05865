package routing

import (
	"runtime"
	"slices"
	"time"

	"github.com/ttpr0/go-roadgraph/graph"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// shortest path engine
//*******************************************

type Option func(*Engine)

// Number of workers, values below 1 fall back to runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// Replaces the default dijkstra.
func WithShortestPath(sp IShortestPath) Option {
	return func(e *Engine) {
		e.sp = sp
	}
}

// Runs one single source shortest path computation per source on a worker pool.
//
// The graph is only read. A failing source fails the whole run, there is no
// retry and no partial result.
type Engine struct {
	sp      IShortestPath
	workers int
}

func NewEngine(g graph.IGraph, opts ...Option) *Engine {
	engine := &Engine{
		sp:      NewDijkstra(g),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.workers < 1 {
		engine.workers = runtime.NumCPU()
	}
	return engine
}

func (self *Engine) Workers() int {
	return self.workers
}

// Computes the shortest path tree of every source, keyed like sources.
func (self *Engine) Run(sources Dict[string, int32]) (Dict[string, ShortestPathResult], error) {
	start := time.Now()
	keys := sources.Keys()
	slices.Sort(keys)

	pool := NewWorkerPool(self.sp, min(self.workers, max(keys.Length(), 1)))
	futures := make([]*Future, 0, keys.Length())
	for _, key := range keys {
		futures = append(futures, pool.Submit(key, sources[key]))
	}
	pool.Close()

	results, err := Gather(futures)
	if err != nil {
		return nil, err
	}
	slog.Info("shortest paths computed", "sources", keys.Length(), "workers", self.workers, "took", time.Since(start).String())
	return results, nil
}
