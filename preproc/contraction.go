package preproc

import (
	"time"

	"github.com/ttpr0/go-roadgraph/graph"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// degree-2 contraction
//*******************************************

type ContractStats struct {
	// vertices removed from chains
	Removed int
	// shortcut edges inserted
	Shortcuts int
	// shortcuts merged into an existing edge
	Merged       int
	RingsDropped int
	RingVertices int
}

// Builds a keep set of size n marking the given vertices.
func KeepSet(n int, nodes ...int32) Array[bool] {
	keep := NewArray[bool](n)
	for _, node := range nodes {
		if node >= 0 && int(node) < n {
			keep[node] = true
		}
	}
	return keep
}

// Collapses every chain of degree-2 vertices into a single shortcut edge.
//
// Kept vertices are never removed. Other vertices of degree != 2 may still be
// removed once merged shortcuts reduce them to degree 2. The shortcut weight is the summed weight of
// the chain; if the endpoints are already connected the smaller weight
// remains. Closed rings of degree-2 vertices without any kept vertex are
// dropped. Shortest path distances between remaining vertices are unchanged.
//
// The returned graph shares the vertex ids of g.
func ContractGraph(g *graph.Graph, keep Array[bool]) (*graph.Graph, ContractStats) {
	start := time.Now()
	stats := ContractStats{}
	dg := graph.NewDynamicGraph(g)
	if keep.Length() < dg.NodeCount() {
		full := NewArray[bool](dg.NodeCount())
		copy(full, keep)
		keep = full
	}

	is_candidate := func(node int32) bool {
		return dg.IsNode(node) && !keep[node] && dg.GetDegree(node) == 2
	}

	_DropRings(dg, keep, &stats)

	worklist := NewList[int32](100)
	for i := 0; i < dg.NodeCount(); i++ {
		if is_candidate(int32(i)) {
			worklist.Add(int32(i))
		}
	}
	// fifo, vertices are contracted in id order first
	head := 0
	for head < worklist.Length() {
		node := worklist[head]
		head += 1
		if !is_candidate(node) {
			continue
		}
		adj := dg.GetAdjacency(node)
		ref_a := adj[0]
		ref_b := adj[1]
		node_a := ref_a.OtherID
		node_b := ref_b.OtherID
		weight := dg.GetEdge(ref_a.EdgeID).Weight + dg.GetEdge(ref_b.EdgeID).Weight

		dg.RemoveNode(node)
		stats.Removed += 1
		if node_a == node_b {
			// self loop
			continue
		}
		if edge, ok := dg.FindEdge(node_a, node_b); ok {
			if weight < dg.GetEdge(edge).Weight {
				dg.SetEdgeWeight(edge, weight)
			}
			stats.Merged += 1
		} else {
			dg.AddEdge(node_a, node_b, weight)
			stats.Shortcuts += 1
		}
		if is_candidate(node_a) {
			worklist.Add(node_a)
		}
		if is_candidate(node_b) {
			worklist.Add(node_b)
		}
	}

	contracted := dg.Freeze()
	slog.Info("contracted graph",
		"nodes", contracted.AliveCount(), "edges", contracted.EdgeCount(),
		"removed", stats.Removed, "rings", stats.RingsDropped, "took", time.Since(start).String())
	return contracted, stats
}

// Removes connected components in which every vertex has degree 2 and none is kept.
func _DropRings(dg *graph.DynamicGraph, keep Array[bool], stats *ContractStats) {
	visited := NewArray[bool](dg.NodeCount())
	stack := NewList[int32](16)
	component := NewList[int32](16)
	for i := 0; i < dg.NodeCount(); i++ {
		if visited[i] || !dg.IsNode(int32(i)) {
			continue
		}
		is_ring := true
		component = component[:0]
		stack.Add(int32(i))
		visited[i] = true
		for stack.Length() > 0 {
			curr, _ := stack.Pop()
			component.Add(curr)
			if keep[curr] || dg.GetDegree(curr) != 2 {
				is_ring = false
			}
			for _, ref := range dg.GetAdjacency(curr) {
				if visited[ref.OtherID] {
					continue
				}
				visited[ref.OtherID] = true
				stack.Add(ref.OtherID)
			}
		}
		if !is_ring {
			continue
		}
		for _, node := range component {
			dg.RemoveNode(node)
		}
		stats.RingsDropped += 1
		stats.RingVertices += component.Length()
		slog.Debug("dropped ring", "vertices", component.Length())
	}
}
