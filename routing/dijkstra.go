package routing

import (
	"math"

	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/graph"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// dijkstra
//*******************************************

type _DijkstraFlag struct {
	dist    float64
	prev    int32
	visited bool
}

type _PQItem struct {
	node int32
	dist float64
}

func NewDijkstra(g graph.IGraph) *Dijkstra {
	return &Dijkstra{g: g}
}

type Dijkstra struct {
	g graph.IGraph
}

func (self *Dijkstra) CreateSolver() ISolver {
	return &DijkstraSolver{
		g:       self.g,
		flags:   NewFlags[_DijkstraFlag](int32(self.g.NodeCount()), _DijkstraFlag{math.Inf(1), -1, false}),
		heap:    NewPriorityQueue[_PQItem, float64](100),
		settled: NewList[int32](100),
	}
}

type DijkstraSolver struct {
	g       graph.IGraph
	flags   Flags[_DijkstraFlag]
	heap    PriorityQueue[_PQItem, float64]
	settled List[int32]
}

// CalcShortestPaths implements ISolver.
func (self *DijkstraSolver) CalcShortestPaths(source int32) (ShortestPathResult, error) {
	if !self.g.IsNode(source) {
		return ShortestPathResult{}, errors.Wrapf(ErrInvalidSource, "vertex %d", source)
	}
	self.flags.Reset()
	self.heap.Clear()
	self.settled = self.settled[:0]

	explorer := self.g.GetGraphExplorer()
	start_flag := self.flags.Get(source)
	start_flag.dist = 0
	self.heap.Enqueue(_PQItem{source, 0}, 0)

	var err error
	for err == nil {
		curr_item, ok := self.heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.node
		curr_flag := self.flags.Get(curr_id)
		if curr_flag.visited || curr_flag.dist < curr_item.dist {
			continue
		}
		curr_flag.visited = true
		self.settled.Add(curr_id)
		explorer.ForAdjacentEdges(curr_id, func(ref graph.EdgeRef) {
			if err != nil {
				return
			}
			weight := explorer.GetEdgeWeight(ref)
			if weight < 0 || math.IsNaN(weight) {
				err = errors.Wrapf(ErrNegativeWeight, "edge %d has weight %v", ref.EdgeID, weight)
				return
			}
			other_flag := self.flags.Get(ref.OtherID)
			if other_flag.visited {
				return
			}
			new_length := curr_flag.dist + weight
			if new_length < other_flag.dist {
				other_flag.dist = new_length
				other_flag.prev = curr_id
				self.heap.Enqueue(_PQItem{ref.OtherID, new_length}, new_length)
			}
		})
	}
	if err != nil {
		return ShortestPathResult{}, err
	}

	result := ShortestPathResult{
		Source:       source,
		Distances:    NewDict[int32, float64](self.settled.Length()),
		Predecessors: NewDict[int32, int32](self.settled.Length()),
	}
	for _, node := range self.settled {
		flag := self.flags.Get(node)
		result.Distances[node] = flag.dist
		if flag.prev != -1 {
			result.Predecessors[node] = flag.prev
		}
	}
	return result, nil
}
