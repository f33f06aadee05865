package graph

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/ttpr0/go-roadgraph/geo"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// geojson export
//*******************************************

// Converts the alive part of the graph into points and linestrings.
//
// Coordinates are mapped back to lon/lat if a projection is given.
func ToFeatureCollection(g *Graph, proj Optional[geo.Projection]) *geojson.FeatureCollection {
	to_coord := func(c geo.Coord) []float64 {
		if proj.HasValue() {
			c = proj.Value.Inverse(c)
		}
		return []float64{c[0], c[1]}
	}

	fc := geojson.NewFeatureCollection()
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.GetEdge(int32(i))
		f := geojson.NewLineStringFeature([][]float64{
			to_coord(g.GetNodeGeom(e.NodeA)),
			to_coord(g.GetNodeGeom(e.NodeB)),
		})
		f.SetProperty("edge", i)
		f.SetProperty("from", g.GetNodeID(e.NodeA))
		f.SetProperty("to", g.GetNodeID(e.NodeB))
		f.SetProperty("weight", e.Weight)
		fc.AddFeature(f)
	}
	for _, node := range g.GetNodes() {
		f := geojson.NewPointFeature(to_coord(g.GetNodeGeom(node)))
		f.SetProperty("node", node)
		f.SetProperty("id", g.GetNodeID(node))
		f.SetProperty("degree", g.GetDegree(node))
		fc.AddFeature(f)
	}
	return fc
}
