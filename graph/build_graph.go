package graph

import (
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// build graph
//*******************************************

type BuildStats struct {
	Segments          int
	References        int
	MissingReferences int
	DuplicatePairs    int
	SelfLoops         int
}

// Builds the undirected road graph from segments and projected vertex coordinates.
//
// Every consecutive pair of a segment becomes an edge weighted by the euclidean
// distance of its endpoints. References without coordinates are dropped together
// with both pairs touching them, the rest of the segment is still processed.
// The first weight observed for a vertex pair wins.
func BuildGraph(coords Dict[int64, geo.Coord], segments []structs.RoadSegment) *Graph {
	g, _ := BuildGraphWithStats(coords, segments)
	return g
}

func BuildGraphWithStats(coords Dict[int64, geo.Coord], segments []structs.RoadSegment) (*Graph, BuildStats) {
	stats := BuildStats{Segments: len(segments)}

	nodes := NewList[structs.Node](coords.Length())
	node_ids := NewList[int64](coords.Length())
	index_mapping := NewDict[int64, int32](coords.Length())
	edges := NewList[structs.Edge](coords.Length())
	edge_mapping := NewDict[Tuple[int32, int32], int32](coords.Length())

	get_node := func(ref int64) (int32, bool) {
		if id, ok := index_mapping[ref]; ok {
			return id, true
		}
		loc, ok := coords[ref]
		if !ok {
			return -1, false
		}
		id := int32(nodes.Length())
		nodes.Add(structs.Node{Loc: loc})
		node_ids.Add(ref)
		index_mapping[ref] = id
		return id, true
	}

	for _, segment := range segments {
		prev := int32(-1)
		for _, ref := range segment.Refs {
			stats.References += 1
			curr, ok := get_node(ref)
			if !ok {
				stats.MissingReferences += 1
				prev = -1
				continue
			}
			if prev == -1 {
				prev = curr
				continue
			}
			if prev == curr {
				stats.SelfLoops += 1
				continue
			}
			key := _EdgeKey(prev, curr)
			if edge_mapping.ContainsKey(key) {
				stats.DuplicatePairs += 1
				prev = curr
				continue
			}
			edge_mapping[key] = int32(edges.Length())
			edges.Add(structs.Edge{
				NodeA:  prev,
				NodeB:  curr,
				Weight: geo.Distance(nodes[prev].Loc, nodes[curr].Loc),
			})
			prev = curr
		}
	}

	is_node := NewArray[bool](nodes.Length())
	for i := range is_node {
		is_node[i] = true
	}
	g := _NewGraph(Array[structs.Node](nodes), is_node, Array[structs.Edge](edges), Array[int64](node_ids))

	slog.Debug("graph built",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"missing", stats.MissingReferences, "duplicates", stats.DuplicatePairs, "self_loops", stats.SelfLoops)
	return g, stats
}

func _EdgeKey(a, b int32) Tuple[int32, int32] {
	if a > b {
		a, b = b, a
	}
	return MakeTuple(a, b)
}
