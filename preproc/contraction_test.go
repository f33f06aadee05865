package preproc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/LdDl/ch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/graph"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// test utilities
//*******************************************

func _BuildLine(ids []int64) *graph.Graph {
	coords := NewDict[int64, geo.Coord](len(ids))
	for i, id := range ids {
		coords[id] = geo.Coord{float64(i), 0}
	}
	return graph.BuildGraph(coords, []structs.RoadSegment{{ID: 1, Refs: ids}})
}

func _Node(t *testing.T, g *graph.Graph, id int64) int32 {
	node, ok := g.GetNodeIndex(id)
	require.True(t, ok, "vertex %d missing", id)
	return node
}

// Floyd-Warshall over alive vertices.
func _AllPairs(g *graph.Graph) [][]float64 {
	n := g.NodeCount()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.GetEdge(int32(i))
		dist[e.NodeA][e.NodeB] = math.Min(dist[e.NodeA][e.NodeB], e.Weight)
		dist[e.NodeB][e.NodeA] = math.Min(dist[e.NodeB][e.NodeA], e.Weight)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func _RandomRoadGraph(r *rand.Rand, n int, segments int) *graph.Graph {
	coords := NewDict[int64, geo.Coord](n)
	for i := 0; i < n; i++ {
		coords[int64(i)] = geo.Coord{r.Float64() * 100, r.Float64() * 100}
	}
	segs := make([]structs.RoadSegment, 0, segments)
	for s := 0; s < segments; s++ {
		l := 2 + r.Intn(6)
		refs := make([]int64, l)
		for i := range refs {
			refs[i] = int64(r.Intn(n))
		}
		segs = append(segs, structs.RoadSegment{ID: int64(s), Refs: refs})
	}
	// a long chain hanging off the network
	chain := []int64{0}
	for i := 0; i < 8; i++ {
		id := int64(n + i)
		coords[id] = geo.Coord{-float64(i + 1), -float64(i + 1)}
		chain = append(chain, id)
	}
	segs = append(segs, structs.RoadSegment{ID: int64(segments), Refs: chain})
	return graph.BuildGraph(coords, segs)
}

//*******************************************
// tests
//*******************************************

func TestContractPath(t *testing.T) {
	g := _BuildLine([]int64{1, 2, 3, 4, 5})
	a := _Node(t, g, 1)
	e := _Node(t, g, 5)

	c, stats := ContractGraph(g, KeepSet(g.NodeCount(), a, e))

	assert.Equal(t, 2, c.AliveCount())
	assert.Equal(t, 1, c.EdgeCount())
	assert.Equal(t, 3, stats.Removed)
	w, ok := c.GetWeight(a, e)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
}

func TestContractKeepsJunctionsAndDeadEnds(t *testing.T) {
	// star with center 1 and arms of length 2
	coords := Dict[int64, geo.Coord]{
		1: {0, 0},
		2: {1, 0}, 3: {2, 0},
		4: {0, 1}, 5: {0, 2},
		6: {-1, 0}, 7: {-2, 0},
	}
	g := graph.BuildGraph(coords, []structs.RoadSegment{
		{ID: 1, Refs: []int64{1, 2, 3}},
		{ID: 2, Refs: []int64{1, 4, 5}},
		{ID: 3, Refs: []int64{1, 6, 7}},
	})

	c, _ := ContractGraph(g, KeepSet(g.NodeCount()))

	assert.Equal(t, 4, c.AliveCount())
	assert.True(t, c.IsNode(_Node(t, g, 1)))
	for _, leaf := range []int64{3, 5, 7} {
		node, ok := c.GetNodeIndex(leaf)
		require.True(t, ok)
		w, ok := c.GetWeight(_Node(t, g, 1), node)
		require.True(t, ok)
		assert.Equal(t, 2.0, w)
	}
}

func TestContractRingTerminates(t *testing.T) {
	coords := Dict[int64, geo.Coord]{
		// ring
		1: {0, 0}, 2: {1, 0}, 3: {1, 1}, 4: {0, 1},
		// path
		10: {5, 5}, 11: {6, 5}, 12: {7, 5},
	}
	g := graph.BuildGraph(coords, []structs.RoadSegment{
		{ID: 1, Refs: []int64{1, 2, 3, 4, 1}},
		{ID: 2, Refs: []int64{10, 11, 12}},
	})
	keep := KeepSet(g.NodeCount(), _Node(t, g, 10), _Node(t, g, 12))

	c, stats := ContractGraph(g, keep)

	assert.Equal(t, 1, stats.RingsDropped)
	assert.Equal(t, 4, stats.RingVertices)
	for _, id := range []int64{1, 2, 3, 4} {
		_, ok := c.GetNodeIndex(id)
		assert.False(t, ok, "ring vertex %d must be dropped", id)
	}
	assert.Equal(t, 2, c.AliveCount())
	assert.Equal(t, 1, c.EdgeCount())
}

func TestContractRingWithKeptVertex(t *testing.T) {
	coords := Dict[int64, geo.Coord]{1: {0, 0}, 2: {3, 0}, 3: {3, 4}}
	g := graph.BuildGraph(coords, []structs.RoadSegment{{ID: 1, Refs: []int64{1, 2, 3, 1}}})
	k := _Node(t, g, 1)

	c, stats := ContractGraph(g, KeepSet(g.NodeCount(), k))

	assert.Equal(t, 0, stats.RingsDropped)
	assert.True(t, c.IsNode(k))
	assert.Equal(t, 1, stats.Merged)
	// 1-2 is merged with 1-3-2 and keeps the direct weight
	w, ok := c.GetWeight(k, _Node(t, g, 3))
	if !ok {
		w, ok = c.GetWeight(k, _Node(t, g, 2))
		require.True(t, ok)
		assert.Equal(t, 3.0, w)
	} else {
		assert.Equal(t, 5.0, w)
	}
}

func TestContractMergeKeepsMinimum(t *testing.T) {
	// junctions 1 and 4 connected directly and by the detour 1-2-3-4
	coords := Dict[int64, geo.Coord]{
		1: {0, 0}, 4: {10, 0},
		2: {0, 1}, 3: {10, 1},
		5: {-1, 0}, 6: {11, 0},
	}
	g := graph.BuildGraph(coords, []structs.RoadSegment{
		{ID: 1, Refs: []int64{5, 1, 4, 6}},
		{ID: 2, Refs: []int64{1, 2, 3, 4}},
	})
	keep := KeepSet(g.NodeCount(), _Node(t, g, 5), _Node(t, g, 6), _Node(t, g, 1), _Node(t, g, 4))

	c, stats := ContractGraph(g, keep)

	assert.Equal(t, 1, stats.Merged)
	w, ok := c.GetWeight(_Node(t, g, 1), _Node(t, g, 4))
	require.True(t, ok)
	assert.Equal(t, 10.0, w)
}

func TestContractMergedJunctionBecomesChain(t *testing.T) {
	// junction 4 loses its parallel branches to a merge and ends up with degree 2
	coords := Dict[int64, geo.Coord]{
		1: {0, 0}, 2: {1, 1}, 3: {1, -1}, 4: {2, 0}, 5: {3, 0},
	}
	g := graph.BuildGraph(coords, []structs.RoadSegment{
		{ID: 1, Refs: []int64{1, 2, 4}},
		{ID: 2, Refs: []int64{1, 3, 4}},
		{ID: 3, Refs: []int64{4, 5}},
	})
	require.Equal(t, 3, g.GetDegree(_Node(t, g, 4)))
	keep := KeepSet(g.NodeCount(), _Node(t, g, 1), _Node(t, g, 5))

	c, stats := ContractGraph(g, keep)

	assert.Equal(t, 1, stats.Merged)
	assert.Equal(t, 3, stats.Removed)
	assert.False(t, c.IsNode(_Node(t, g, 4)))
	assert.Equal(t, 2, c.AliveCount())
	w, ok := c.GetWeight(_Node(t, g, 1), _Node(t, g, 5))
	require.True(t, ok)
	assert.InDelta(t, 2*math.Sqrt2+1, w, 1e-9)
}

func TestContractNoEligibleVertexLeft(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		g := _RandomRoadGraph(r, 40, 25)
		keep := KeepSet(g.NodeCount(), int32(r.Intn(g.NodeCount())), int32(r.Intn(g.NodeCount())))
		c, _ := ContractGraph(g, keep)
		for _, node := range c.GetNodes() {
			if keep[node] {
				continue
			}
			assert.NotEqual(t, 2, c.GetDegree(node))
		}
	}
}

func TestContractDistancePreservation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		g := _RandomRoadGraph(r, 40, 25)
		keep_nodes := make([]int32, 0, 6)
		for i := 0; i < 6; i++ {
			keep_nodes = append(keep_nodes, int32(r.Intn(g.NodeCount())))
		}
		c, _ := ContractGraph(g, KeepSet(g.NodeCount(), keep_nodes...))

		want := _AllPairs(g)
		got := _AllPairs(c)
		for _, u := range keep_nodes {
			require.True(t, c.IsNode(u))
			for _, v := range keep_nodes {
				if math.IsInf(want[u][v], 1) {
					assert.True(t, math.IsInf(got[u][v], 1))
					continue
				}
				assert.InDelta(t, want[u][v], got[u][v], 1e-9)
			}
		}
	}
}

func _ToCH(t *testing.T, g *graph.Graph) *ch.Graph {
	chg := &ch.Graph{}
	for _, node := range g.GetNodes() {
		require.NoError(t, chg.CreateVertex(int64(node)))
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.GetEdge(int32(i))
		require.NoError(t, chg.AddEdge(int64(e.NodeA), int64(e.NodeB), e.Weight))
		require.NoError(t, chg.AddEdge(int64(e.NodeB), int64(e.NodeA), e.Weight))
	}
	chg.PrepareContractionHierarchies()
	return chg
}

func TestContractMatchesContractionHierarchies(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := _RandomRoadGraph(r, 60, 40)
	keep_nodes := []int32{0, 5, 10, 15, 20}
	c, _ := ContractGraph(g, KeepSet(g.NodeCount(), keep_nodes...))

	orig := _ToCH(t, g)
	contracted := _ToCH(t, c)
	for _, u := range keep_nodes {
		for _, v := range keep_nodes {
			if u == v {
				continue
			}
			want, _ := orig.ShortestPath(int64(u), int64(v))
			got, _ := contracted.ShortestPath(int64(u), int64(v))
			assert.InDelta(t, want, got, 1e-6, "%d -> %d", u, v)
		}
	}
}

func TestKeepSet(t *testing.T) {
	keep := KeepSet(4, 1, 3, 9, -1)
	assert.Equal(t, Array[bool]{false, true, false, true}, keep)
}
