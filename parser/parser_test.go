package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/graph"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

func TestParseOSMXML(t *testing.T) {
	data, err := ParseOSM(context.Background(), "./testdata/small.osm", NewTagDecoder(nil, nil))
	require.NoError(t, err)

	require.Equal(t, 2, data.Segments.Length())
	assert.Equal(t, structs.RoadSegment{ID: 10, Refs: []int64{1, 2, 3}}, data.Segments[0])
	assert.Equal(t, structs.RoadSegment{ID: 11, Refs: []int64{3, 4, 999, 5}}, data.Segments[1])

	// footway node 6 is not part of a selected road
	assert.Equal(t, 5, data.Nodes.Length())
	assert.False(t, data.Nodes.ContainsKey(6))
	assert.Equal(t, 1, data.MissingNodes)
	assert.Equal(t, geo.Coord{9.001, 50.0}, data.Nodes[2])

	require.Equal(t, 2, data.Places.Length())
	assert.Equal(t, "node/100", data.Places[0].ID)
	assert.Equal(t, "Westdorf", data.Places[0].Name)
	assert.Equal(t, "Nordweiler", data.Places[1].Name)
}

func TestParseOSMSelectors(t *testing.T) {
	decoder := NewTagDecoder([]string{"footway"}, []string{"hamlet"})
	data, err := ParseOSM(context.Background(), "./testdata/small.osm", decoder)
	require.NoError(t, err)

	require.Equal(t, 1, data.Segments.Length())
	assert.Equal(t, int64(12), data.Segments[0].ID)
	require.Equal(t, 1, data.Places.Length())
	assert.Equal(t, "node/101", data.Places[0].ID)
}

func TestParseOSMErrors(t *testing.T) {
	_, err := ParseOSM(context.Background(), "./testdata/missing.osm", NewTagDecoder(nil, nil))
	assert.Error(t, err)
	_, err = ParseOSM(context.Background(), "./testdata/vertices.csv", NewTagDecoder(nil, nil))
	assert.Error(t, err)
}

func TestRoadDataProject(t *testing.T) {
	data, err := ParseOSM(context.Background(), "./testdata/small.osm", NewTagDecoder(nil, nil))
	require.NoError(t, err)

	planar, proj := data.Project()
	require.Equal(t, data.Nodes.Length(), planar.Coords.Length())

	// node 1 is the south west corner of the road network
	assert.InDelta(t, 0, planar.Coords[1].X(), 1e-6)
	assert.InDelta(t, 0, planar.Coords[1].Y(), 1e-6)
	// 0.001 degree latitude
	assert.InDelta(t, 111.12, planar.Coords[5].Y()-planar.Coords[3].Y(), 1e-6)

	require.Equal(t, 2, planar.POIs.Length())
	back := proj.Inverse(planar.POIs[0].Loc)
	assert.InDelta(t, 9.0001, back.X(), 1e-9)
	assert.InDelta(t, 50.0001, back.Y(), 1e-9)
}

func TestReadPlanarCSV(t *testing.T) {
	data, err := ReadPlanarCSV("./testdata/vertices.csv", "./testdata/segments.csv", "./testdata/pois.csv", ';')
	require.NoError(t, err)

	assert.Equal(t, 4, data.Coords.Length())
	assert.Equal(t, geo.Coord{2, 1}, data.Coords[4])
	assert.Equal(t, List[structs.RoadSegment]{
		{ID: 7, Refs: []int64{1, 2, 3}},
		{ID: 8, Refs: []int64{3, 4, 42}},
	}, data.Segments)
	require.Equal(t, 2, data.POIs.Length())
	assert.Equal(t, structs.PointOfInterest{ID: "work", Name: "Work", Loc: geo.Coord{2.1, 0.9}}, data.POIs[1])
}

func TestReadPlanarCSVWithoutPOIs(t *testing.T) {
	data, err := ReadPlanarCSV("./testdata/vertices.csv", "./testdata/segments.csv", "", ';')
	require.NoError(t, err)
	assert.Equal(t, 0, data.POIs.Length())

	_, err = ReadPlanarCSV("./testdata/none.csv", "./testdata/segments.csv", "", ';')
	assert.Error(t, err)
}

func TestReadPlanarCSVBlankCells(t *testing.T) {
	data, err := ReadPlanarCSV("./testdata/vertices_blank.csv", "./testdata/segments_blank.csv", "", ';')
	require.NoError(t, err)

	// vertices 3 and 4 lack a coordinate
	assert.Equal(t, 4, data.Coords.Length())
	assert.False(t, data.Coords.ContainsKey(3))
	assert.False(t, data.Coords.ContainsKey(4))
	assert.False(t, data.Coords.ContainsKey(0))
	assert.Equal(t, List[structs.RoadSegment]{
		{ID: 1, Refs: []int64{1, 2, 3, 4, 5}},
		{ID: 2, Refs: []int64{5}},
		{ID: 2, Refs: []int64{6}},
	}, data.Segments)

	g, stats := graph.BuildGraphWithStats(data.Coords, data.Segments)
	assert.Equal(t, 2, stats.MissingReferences)
	assert.Equal(t, 4, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
	_, ok := g.GetWeight(0, 1)
	assert.True(t, ok)
}
