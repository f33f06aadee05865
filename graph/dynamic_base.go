package graph

import (
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// dynamic graph
//*******************************************

// Mutable copy of a Graph used during preprocessing.
//
// Vertex ids are shared with the source graph. Removed vertices and edges are
// only flagged, Freeze compacts the edge table.
type DynamicGraph struct {
	nodes    Array[structs.Node]
	node_ids Array[int64]
	is_node  Array[bool]

	edges   List[structs.Edge]
	is_edge List[bool]

	topology Array[List[EdgeRef]]
}

func NewDynamicGraph(g *Graph) *DynamicGraph {
	topology := NewArray[List[EdgeRef]](g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		entries := g.topology.GetEntries(int32(i))
		topology[i] = NewList[EdgeRef](entries.Length())
		for _, ref := range entries {
			topology[i].Add(ref)
		}
	}
	edges := NewList[structs.Edge](g.EdgeCount())
	is_edge := NewList[bool](g.EdgeCount())
	for _, e := range g.edges {
		edges.Add(e)
		is_edge.Add(true)
	}
	return &DynamicGraph{
		nodes:    g.nodes,
		node_ids: g.node_ids,
		is_node:  g.is_node.Copy(),
		edges:    edges,
		is_edge:  is_edge,
		topology: topology,
	}
}

func (self *DynamicGraph) NodeCount() int {
	return self.nodes.Length()
}
func (self *DynamicGraph) IsNode(node int32) bool {
	return self.is_node[node]
}
func (self *DynamicGraph) IsEdge(edge int32) bool {
	return self.is_edge[edge]
}
func (self *DynamicGraph) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *DynamicGraph) GetDegree(node int32) int {
	return self.topology[node].Length()
}

// Adjacency of node, valid until the next modification.
func (self *DynamicGraph) GetAdjacency(node int32) List[EdgeRef] {
	return self.topology[node]
}

// Returns the edge connecting a and b.
func (self *DynamicGraph) FindEdge(a, b int32) (int32, bool) {
	for _, ref := range self.topology[a] {
		if ref.OtherID == b {
			return ref.EdgeID, true
		}
	}
	return -1, false
}

func (self *DynamicGraph) AddEdge(node_a, node_b int32, weight float64) int32 {
	id := int32(self.edges.Length())
	self.edges.Add(structs.Edge{NodeA: node_a, NodeB: node_b, Weight: weight})
	self.is_edge.Add(true)
	self.topology[node_a].Add(CreateEdgeRef(id, node_b))
	self.topology[node_b].Add(CreateEdgeRef(id, node_a))
	return id
}

func (self *DynamicGraph) SetEdgeWeight(edge int32, weight float64) {
	self.edges[edge].Weight = weight
}

func (self *DynamicGraph) RemoveEdge(edge int32) {
	if !self.is_edge[edge] {
		return
	}
	self.is_edge[edge] = false
	e := self.edges[edge]
	self._RemoveEntry(e.NodeA, edge)
	self._RemoveEntry(e.NodeB, edge)
}

// Removes the vertex together with all incident edges.
func (self *DynamicGraph) RemoveNode(node int32) {
	if !self.is_node[node] {
		return
	}
	for self.topology[node].Length() > 0 {
		self.RemoveEdge(self.topology[node][0].EdgeID)
	}
	self.is_node[node] = false
}

func (self *DynamicGraph) _RemoveEntry(node int32, edge int32) {
	adj := &self.topology[node]
	for i, ref := range *adj {
		if ref.EdgeID == edge {
			// preserves insertion order
			*adj = append((*adj)[:i], (*adj)[i+1:]...)
			return
		}
	}
}

// Converts back into an immutable Graph with a compacted edge table.
func (self *DynamicGraph) Freeze() *Graph {
	edges := NewList[structs.Edge](self.edges.Length())
	for i, e := range self.edges {
		if !self.is_edge[i] {
			continue
		}
		edges.Add(e)
	}
	return _NewGraph(self.nodes, self.is_node.Copy(), Array[structs.Edge](edges), self.node_ids)
}
