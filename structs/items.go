package structs

import (
	"github.com/ttpr0/go-roadgraph/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc geo.Coord
}

// Undirected weighted edge, NodeA != NodeB.
type Edge struct {
	NodeA  int32
	NodeB  int32
	Weight float64
}

// Returns the endpoint opposite to node, -1 if node is not an endpoint.
func (self Edge) Other(node int32) int32 {
	if node == self.NodeA {
		return self.NodeB
	}
	if node == self.NodeB {
		return self.NodeA
	}
	return -1
}

//*******************************************
// input structs
//*******************************************

// Ordered chain of external vertex ids.
type RoadSegment struct {
	ID   int64
	Refs []int64
}

type PointOfInterest struct {
	ID   string
	Name string
	Loc  geo.Coord
}
