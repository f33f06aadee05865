package graph

import (
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// adjacency array
//*******************************************

// Compressed adjacency of an undirected graph.
//
// Entries of node i are stored in entries[offsets[i]:offsets[i+1]] in edge-id order.
type _AdjacencyArray struct {
	offsets Array[int32]
	entries Array[EdgeRef]
}

func (self *_AdjacencyArray) GetDegree(node int32) int {
	return int(self.offsets[node+1] - self.offsets[node])
}

func (self *_AdjacencyArray) GetEntries(node int32) Array[EdgeRef] {
	return self.entries[self.offsets[node]:self.offsets[node+1]]
}

func _BuildTopology(node_count int, edges Array[_TopologyEdge]) _AdjacencyArray {
	degrees := NewArray[int32](node_count + 1)
	for _, e := range edges {
		degrees[e.node_a] += 1
		degrees[e.node_b] += 1
	}
	offsets := NewArray[int32](node_count + 1)
	var acc int32 = 0
	for i := 0; i < node_count; i++ {
		offsets[i] = acc
		acc += degrees[i]
	}
	offsets[node_count] = acc

	entries := NewArray[EdgeRef](int(acc))
	fill := offsets.Copy()
	for i, e := range edges {
		entries[fill[e.node_a]] = CreateEdgeRef(int32(i), e.node_b)
		fill[e.node_a] += 1
		entries[fill[e.node_b]] = CreateEdgeRef(int32(i), e.node_a)
		fill[e.node_b] += 1
	}
	return _AdjacencyArray{
		offsets: offsets,
		entries: entries,
	}
}

type _TopologyEdge struct {
	node_a int32
	node_b int32
}
