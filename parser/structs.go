package parser

import (
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// parser structs
//*******************************************

// Road network in geographic (lon, lat) coordinates.
type RoadData struct {
	// coordinates of every node referenced by a road
	Nodes    Dict[int64, geo.Coord]
	Segments List[structs.RoadSegment]
	Places   List[structs.PointOfInterest]
	// road node references without a node in the source
	MissingNodes int
}

// Road network in planar coordinates, input of the graph builder.
type PlanarData struct {
	Coords   Dict[int64, geo.Coord]
	Segments List[structs.RoadSegment]
	POIs     List[structs.PointOfInterest]
}

// Projects roads and places to planar meters.
//
// The normalization root is taken from the road nodes only.
func (self *RoadData) Project() (*PlanarData, geo.Projection) {
	ref := NewList[geo.Coord](self.Nodes.Length())
	for _, c := range self.Nodes {
		ref.Add(c)
	}
	proj := geo.NewProjection(ref)

	coords := NewDict[int64, geo.Coord](self.Nodes.Length())
	for id, c := range self.Nodes {
		coords[id] = proj.Project(c)
	}
	pois := NewList[structs.PointOfInterest](self.Places.Length())
	for _, place := range self.Places {
		place.Loc = proj.Project(place.Loc)
		pois.Add(place)
	}
	return &PlanarData{
		Coords:   coords,
		Segments: self.Segments,
		POIs:     pois,
	}, proj
}
