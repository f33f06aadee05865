package geo

import (
	"math"
)

// Meters per degree latitude.
const METERS_PER_DEGREE = 111120.0

//*******************************************
// projection
//*******************************************

// Linear lon/lat to meters approximation.
//
// y = lat * 111120, x = lon * 111120 * cos(lat). Projected coordinates are
// shifted by Root, the component-wise minimum of the reference data set, so
// that all normalized coordinates are nonnegative.
type Projection struct {
	Root Coord
}

// Creates a projection normalized to the given (lon, lat) reference coords.
func NewProjection(reference []Coord) Projection {
	proj := Projection{}
	if len(reference) == 0 {
		return proj
	}
	root := Coord{math.Inf(1), math.Inf(1)}
	for _, c := range reference {
		m := ToMeters(c)
		root[0] = math.Min(root[0], m[0])
		root[1] = math.Min(root[1], m[1])
	}
	proj.Root = root
	return proj
}

// Projects a (lon, lat) coord to normalized planar meters.
func (self Projection) Project(c Coord) Coord {
	m := ToMeters(c)
	return Coord{m[0] - self.Root[0], m[1] - self.Root[1]}
}

// Maps normalized planar meters back to (lon, lat).
func (self Projection) Inverse(c Coord) Coord {
	lat := (c[1] + self.Root[1]) / METERS_PER_DEGREE
	lat_rad := lat * math.Pi / 180
	x := c[0] + self.Root[0]
	scale := METERS_PER_DEGREE * math.Cos(lat_rad)
	if scale == 0 {
		return Coord{0, lat}
	}
	return Coord{x / scale, lat}
}

// Un-normalized projection of a (lon, lat) coord.
func ToMeters(c Coord) Coord {
	lat_rad := c[1] * math.Pi / 180
	return Coord{
		c[0] * METERS_PER_DEGREE * math.Cos(lat_rad),
		c[1] * METERS_PER_DEGREE,
	}
}
