package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

//*******************************************
// coordinates
//*******************************************

// Planar (x, y) coordinate in meters, or (lon, lat) before projection.
type Coord [2]float64

func (self Coord) X() float64 {
	return self[0]
}
func (self Coord) Y() float64 {
	return self[1]
}
func (self Coord) Point() orb.Point {
	return orb.Point(self)
}

// Euclidean distance between two planar coordinates.
func Distance(a, b Coord) float64 {
	return planar.Distance(a.Point(), b.Point())
}

func DistanceSquared(a, b Coord) float64 {
	return planar.DistanceSquared(a.Point(), b.Point())
}

//*******************************************
// bounding box
//*******************************************

// Bounding box of the coords, padded so that no coord lies on the border.
func BoundOf(coords []Coord) orb.Bound {
	if len(coords) == 0 {
		return orb.Bound{}
	}
	bound := orb.Bound{Min: coords[0].Point(), Max: coords[0].Point()}
	for _, c := range coords[1:] {
		bound = bound.Extend(c.Point())
	}
	pad := math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1]) * 0.01
	if pad == 0 {
		pad = 1
	}
	return bound.Pad(pad)
}
