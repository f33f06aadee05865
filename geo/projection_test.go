package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionRoot(t *testing.T) {
	ref := []Coord{{9.3796, 50.2013}, {9.6281, 50.0338}, {9.5, 50.1}}
	proj := NewProjection(ref)

	for _, c := range ref {
		p := proj.Project(c)
		assert.GreaterOrEqual(t, p.X(), -1e-6)
		assert.GreaterOrEqual(t, p.Y(), -1e-6)
	}
	// southernmost coord defines the y root
	assert.InDelta(t, 0, proj.Project(ref[1]).Y(), 1e-6)
}

func TestProjectionInverse(t *testing.T) {
	ref := []Coord{{9.3796, 50.2013}, {9.6281, 50.0338}}
	proj := NewProjection(ref)

	for _, c := range ref {
		back := proj.Inverse(proj.Project(c))
		assert.InDelta(t, c.X(), back.X(), 1e-9)
		assert.InDelta(t, c.Y(), back.Y(), 1e-9)
	}
}

func TestProjectionScale(t *testing.T) {
	// one degree latitude at the equator
	m := ToMeters(Coord{1, 0})
	assert.InDelta(t, METERS_PER_DEGREE, m.X(), 1e-9)

	m = ToMeters(Coord{1, 60})
	assert.InDelta(t, METERS_PER_DEGREE*0.5, m.X(), 1e-6)
	assert.InDelta(t, METERS_PER_DEGREE*60, m.Y(), 1e-6)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Coord{0, 0}, Coord{3, 4}))
	assert.Equal(t, 25.0, DistanceSquared(Coord{0, 0}, Coord{3, 4}))
}

func TestBoundOf(t *testing.T) {
	b := BoundOf([]Coord{{0, 0}, {10, 5}})
	assert.True(t, b.Contains(Coord{0, 0}.Point()))
	assert.True(t, b.Contains(Coord{10, 5}.Point()))
	assert.Less(t, b.Min[0], 0.0)
}
