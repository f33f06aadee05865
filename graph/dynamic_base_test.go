package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-roadgraph/structs"
)

func TestDynamicGraphModify(t *testing.T) {
	g := BuildGraph(_LineCoords(4), []structs.RoadSegment{
		{ID: 1, Refs: []int64{1, 2, 3, 4}},
	})
	dg := NewDynamicGraph(g)

	require.Equal(t, 2, dg.GetDegree(1))
	dg.RemoveNode(1)
	assert.False(t, dg.IsNode(1))
	assert.Equal(t, 0, dg.GetDegree(1))
	assert.Equal(t, 0, dg.GetDegree(0))
	assert.Equal(t, 1, dg.GetDegree(2))
	assert.False(t, dg.IsEdge(0))
	assert.False(t, dg.IsEdge(1))
	assert.True(t, dg.IsEdge(2))

	id := dg.AddEdge(0, 2, 2)
	edge, ok := dg.FindEdge(2, 0)
	require.True(t, ok)
	assert.Equal(t, id, edge)
	dg.SetEdgeWeight(edge, 1.5)

	fg := dg.Freeze()
	assert.Equal(t, 3, fg.AliveCount())
	assert.Equal(t, 4, fg.NodeCount())
	assert.Equal(t, 2, fg.EdgeCount())
	assert.False(t, fg.IsNode(1))
	w, ok := fg.GetWeight(0, 2)
	require.True(t, ok)
	assert.Equal(t, 1.5, w)

	_, ok = fg.GetNodeIndex(2)
	assert.False(t, ok, "removed vertex has no external mapping")

	// source graph is untouched
	assert.True(t, g.IsNode(1))
	assert.Equal(t, 3, g.EdgeCount())
}
