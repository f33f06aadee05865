package graph

import (
	"sync"

	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	// Size of the vertex id space, removed vertices included.
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) geo.Coord
	GetClosestNode(point geo.Coord) (int32, bool)
}

type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	ForAdjacentEdges(node int32, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) float64
	GetOtherNode(edge EdgeRef, node int32) int32
}

//*******************************************
// graph
//******************************************

var _ IGraph = &Graph{}

// Immutable undirected weighted graph over dense vertex ids.
//
// Safe for concurrent reads once built.
type Graph struct {
	nodes    Array[structs.Node]
	is_node  Array[bool]
	edges    Array[structs.Edge]
	topology _AdjacencyArray

	// dense id -> external id
	node_ids Array[int64]
	// external id -> dense id
	id_mapping Dict[int64, int32]

	index      IGraphIndex
	index_once sync.Once
}

func _NewGraph(nodes Array[structs.Node], is_node Array[bool], edges Array[structs.Edge], node_ids Array[int64]) *Graph {
	topo_edges := NewArray[_TopologyEdge](edges.Length())
	for i, e := range edges {
		topo_edges[i] = _TopologyEdge{node_a: e.NodeA, node_b: e.NodeB}
	}
	id_mapping := NewDict[int64, int32](node_ids.Length())
	for i, id := range node_ids {
		if is_node[i] {
			id_mapping[id] = int32(i)
		}
	}
	return &Graph{
		nodes:      nodes,
		is_node:    is_node,
		edges:      edges,
		topology:   _BuildTopology(nodes.Length(), topo_edges),
		node_ids:   node_ids,
		id_mapping: id_mapping,
	}
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		graph: self,
	}
}
func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}
func (self *Graph) EdgeCount() int {
	return self.edges.Length()
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && int(node) < self.nodes.Length() && self.is_node[node]
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}
func (self *Graph) GetClosestNode(point geo.Coord) (int32, bool) {
	self.index_once.Do(func() {
		if self.index == nil {
			self.index = NewQuadTreeIndex(self)
		}
	})
	return self.index.GetClosestNode(point)
}

// Sets the index used by GetClosestNode.
//
// Only takes effect before the first lookup, returns false otherwise.
func (self *Graph) SetIndex(index IGraphIndex) bool {
	set := false
	self.index_once.Do(func() {
		self.index = index
		set = true
	})
	return set
}

// Number of vertices not removed.
func (self *Graph) AliveCount() int {
	c := 0
	for _, alive := range self.is_node {
		if alive {
			c += 1
		}
	}
	return c
}

func (self *Graph) GetDegree(node int32) int {
	return self.topology.GetDegree(node)
}

// External id of a vertex.
func (self *Graph) GetNodeID(node int32) int64 {
	return self.node_ids[node]
}

// Dense id of an external vertex id.
func (self *Graph) GetNodeIndex(id int64) (int32, bool) {
	node, ok := self.id_mapping[id]
	return node, ok
}

// Returns the weight of the edge between a and b.
func (self *Graph) GetWeight(a, b int32) (float64, bool) {
	for _, ref := range self.topology.GetEntries(a) {
		if ref.OtherID == b {
			return self.edges[ref.EdgeID].Weight, true
		}
	}
	return 0, false
}

// Dense ids of all alive vertices in ascending order.
func (self *Graph) GetNodes() List[int32] {
	nodes := NewList[int32](self.nodes.Length())
	for i, alive := range self.is_node {
		if alive {
			nodes.Add(int32(i))
		}
	}
	return nodes
}

//*******************************************
// base-graph explorer
//******************************************

type BaseGraphExplorer struct {
	graph *Graph
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, callback func(EdgeRef)) {
	for _, ref := range self.graph.topology.GetEntries(node) {
		callback(ref)
	}
}
func (self *BaseGraphExplorer) GetEdgeWeight(edge EdgeRef) float64 {
	return self.graph.edges[edge.EdgeID].Weight
}
func (self *BaseGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	return self.graph.edges[edge.EdgeID].Other(node)
}
