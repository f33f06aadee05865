package routing

import (
	"github.com/pkg/errors"
	. "github.com/ttpr0/go-roadgraph/util"
)

var (
	ErrInvalidSource  = errors.New("source is not a vertex of the graph")
	ErrNegativeWeight = errors.New("negative edge weight encountered")
	ErrPoolClosed     = errors.New("worker pool is closed")
	ErrDuplicateKey   = errors.New("duplicate source key")
)

type IShortestPath interface {
	// Creates a solver owning its own search state.
	CreateSolver() ISolver
}

// not thread safe, use only one instance per worker
type ISolver interface {
	// Computes distances and predecessors from source to every reachable vertex.
	CalcShortestPaths(source int32) (ShortestPathResult, error)
}

//*******************************************
// shortest path result
//*******************************************

// Shortest path tree of a single source.
//
// Vertices not reachable from Source have no entry. Source itself has
// distance 0 and no predecessor.
type ShortestPathResult struct {
	Source       int32                 `json:"source"`
	Distances    Dict[int32, float64] `json:"distances"`
	Predecessors Dict[int32, int32]   `json:"predecessors"`
}

func (self ShortestPathResult) GetDistance(node int32) (float64, bool) {
	dist, ok := self.Distances[node]
	return dist, ok
}

// Reconstructs the vertex sequence from Source to node.
func (self ShortestPathResult) PathTo(node int32) ([]int32, bool) {
	if !self.Distances.ContainsKey(node) {
		return nil, false
	}
	path := []int32{node}
	curr := node
	for curr != self.Source {
		prev, ok := self.Predecessors[curr]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		curr = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
