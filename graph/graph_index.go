package graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

var ErrEmptyGraph = errors.New("graph has no vertices")

// *******************************************
// graph index interface
// *******************************************

// Nearest vertex lookup.
//
// Returns any vertex minimizing the euclidean distance to point, false only
// if the indexed graph has no vertices. Ties are broken arbitrarily.
type IGraphIndex interface {
	GetClosestNode(point geo.Coord) (int32, bool)
}

//*******************************************
// brute force index
//*******************************************

type BruteForceIndex struct {
	nodes Array[int32]
	locs  Array[geo.Coord]
}

func NewBruteForceIndex(g IGraph) *BruteForceIndex {
	nodes := NewList[int32](g.NodeCount())
	locs := NewList[geo.Coord](g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		if !g.IsNode(int32(i)) {
			continue
		}
		nodes.Add(int32(i))
		locs.Add(g.GetNodeGeom(int32(i)))
	}
	return &BruteForceIndex{
		nodes: Array[int32](nodes),
		locs:  Array[geo.Coord](locs),
	}
}

func (self *BruteForceIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	if self.nodes.Length() == 0 {
		return -1, false
	}
	best := 0
	best_dist := geo.DistanceSquared(point, self.locs[0])
	for i := 1; i < self.locs.Length(); i++ {
		d := geo.DistanceSquared(point, self.locs[i])
		if d < best_dist {
			best = i
			best_dist = d
		}
	}
	return self.nodes[best], true
}

//*******************************************
// quadtree index
//*******************************************

type _IndexPoint struct {
	node int32
	loc  orb.Point
}

func (self _IndexPoint) Point() orb.Point {
	return self.loc
}

type QuadTreeIndex struct {
	tree *quadtree.Quadtree
	size int
}

func NewQuadTreeIndex(g IGraph) *QuadTreeIndex {
	locs := NewList[geo.Coord](g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		if g.IsNode(int32(i)) {
			locs.Add(g.GetNodeGeom(int32(i)))
		}
	}
	tree := quadtree.New(geo.BoundOf(locs))
	size := 0
	for i := 0; i < g.NodeCount(); i++ {
		if !g.IsNode(int32(i)) {
			continue
		}
		// bound covers every location, Add can not fail
		tree.Add(_IndexPoint{node: int32(i), loc: g.GetNodeGeom(int32(i)).Point()})
		size += 1
	}
	return &QuadTreeIndex{
		tree: tree,
		size: size,
	}
}

func (self *QuadTreeIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	if self.size == 0 {
		return -1, false
	}
	p := self.tree.Find(point.Point())
	if p == nil {
		return -1, false
	}
	return p.(_IndexPoint).node, true
}

//*******************************************
// locate points of interest
//*******************************************

// Resolves every point of interest to its closest vertex.
func LocatePOIs(index IGraphIndex, pois []structs.PointOfInterest) (Array[int32], error) {
	nodes := NewArray[int32](len(pois))
	for i, poi := range pois {
		node, ok := index.GetClosestNode(poi.Loc)
		if !ok {
			return nil, errors.Wrapf(ErrEmptyGraph, "failed to locate %s", poi.ID)
		}
		nodes[i] = node
	}
	return nodes, nil
}
