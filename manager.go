package main

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/graph"
	"github.com/ttpr0/go-roadgraph/parser"
	"github.com/ttpr0/go-roadgraph/preproc"
	"github.com/ttpr0/go-roadgraph/routing"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

var ErrDuplicatePOI = errors.New("duplicate point of interest id")

//**********************************************************
// routing manager
//**********************************************************

// Holds the road graph built from the configured source and answers
// distance table requests against it.
type RoutingManager struct {
	config Config
	// set for osm sources only
	proj        Optional[geo.Projection]
	graph       *graph.Graph
	pois        List[structs.PointOfInterest]
	build_stats graph.BuildStats

	mu   sync.RWMutex
	last Optional[*DistanceTable]
}

func NewRoutingManager(ctx context.Context, config Config) (*RoutingManager, error) {
	data, proj, err := LoadPlanarData(ctx, config)
	if err != nil {
		return nil, err
	}
	return NewRoutingManagerFromData(config, data, proj), nil
}

func NewRoutingManagerFromData(config Config, data *parser.PlanarData, proj Optional[geo.Projection]) *RoutingManager {
	g, stats := graph.BuildGraphWithStats(data.Coords, data.Segments)
	g.SetIndex(graph.NewGraphIndex(g, config.GetIndexType()))
	slog.Info("road graph built", "vertices", g.NodeCount(), "edges", g.EdgeCount(), "missing_refs", stats.MissingReferences)

	return &RoutingManager{
		config:      config,
		proj:        proj,
		graph:       g,
		pois:        data.POIs,
		build_stats: stats,
	}
}

// Reads the configured source into planar coordinates.
func LoadPlanarData(ctx context.Context, config Config) (*parser.PlanarData, Optional[geo.Projection], error) {
	switch config.Source.Type {
	case OSM:
		decoder := parser.NewTagDecoder(config.Selectors.Highways, config.Selectors.Places)
		road_data, err := parser.ParseOSM(ctx, config.Source.OSM, decoder)
		if err != nil {
			return nil, None[geo.Projection](), err
		}
		data, proj := road_data.Project()
		return data, Some(proj), nil
	case CSV:
		data, err := parser.ReadPlanarCSV(config.Source.Vertices, config.Source.Segments, config.Source.POIs, config.GetDelimiter())
		if err != nil {
			return nil, None[geo.Projection](), err
		}
		return data, None[geo.Projection](), nil
	default:
		return nil, None[geo.Projection](), errors.Errorf("unsupported source type %v", config.Source.Type)
	}
}

func (self *RoutingManager) GetGraph() *graph.Graph {
	return self.graph
}

func (self *RoutingManager) GetProjection() Optional[geo.Projection] {
	return self.proj
}

// Points of interest read from the source.
func (self *RoutingManager) GetPOIs() List[structs.PointOfInterest] {
	return self.pois
}

func (self *RoutingManager) GetBuildStats() graph.BuildStats {
	return self.build_stats
}

// Last computed distance table.
func (self *RoutingManager) GetLastTable() Optional[*DistanceTable] {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.last
}

//**********************************************************
// distance table pipeline
//**********************************************************

// Locates every point of interest, contracts the graph keeping the located
// vertices, computes one shortest path tree per point of interest and
// reduces the trees to the located vertices.
func (self *RoutingManager) ComputeTable(pois []structs.PointOfInterest) (*DistanceTable, error) {
	start := time.Now()

	seen := NewDict[string, bool](len(pois))
	for _, poi := range pois {
		if seen[poi.ID] {
			return nil, errors.Wrap(ErrDuplicatePOI, poi.ID)
		}
		seen[poi.ID] = true
	}

	nodes, err := graph.LocatePOIs(self.graph, pois)
	if err != nil {
		return nil, err
	}

	keep := preproc.KeepSet(self.graph.NodeCount(), nodes...)
	contracted, contract_stats := preproc.ContractGraph(self.graph, keep)

	sources := NewDict[string, int32](len(pois))
	for i, poi := range pois {
		sources[poi.ID] = nodes[i]
	}
	engine := routing.NewEngine(contracted, routing.WithWorkers(self.config.Routing.Workers))
	results, err := engine.Run(sources)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute shortest paths")
	}
	filtered := routing.FilterResults(results, routing.RelevantSet(nodes...))

	table := _BuildDistanceTable(self.graph, contracted, pois, nodes, filtered)
	table.Stats.Contraction = contract_stats
	slog.Info("distance table computed", "pois", len(pois), "kept", contracted.AliveCount(), "took", time.Since(start).String())

	self.mu.Lock()
	self.last = Some(table)
	self.mu.Unlock()
	return table, nil
}

//**********************************************************
// distance table
//**********************************************************

type TablePOI struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Vertex int32   `json:"vertex"`
	NodeID int64   `json:"node_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type TableStats struct {
	Vertices           int                   `json:"vertices"`
	Edges              int                   `json:"edges"`
	ContractedVertices int                   `json:"contracted_vertices"`
	ContractedEdges    int                   `json:"contracted_edges"`
	Contraction        preproc.ContractStats `json:"contraction"`
}

type DistanceTable struct {
	POIs []TablePOI `json:"pois"`
	// source poi -> target poi -> distance, unreachable pairs are missing
	Distances Dict[string, Dict[string, float64]] `json:"distances"`
	// filtered shortest path trees per source poi
	Results    Dict[string, routing.ShortestPathResult] `json:"results"`
	Stats      TableStats                              `json:"stats"`
	contracted *graph.Graph
}

func (self *DistanceTable) GetDistance(from, to string) (float64, bool) {
	row, ok := self.Distances[from]
	if !ok {
		return 0, false
	}
	dist, ok := row[to]
	return dist, ok
}

func (self *DistanceTable) GetContractedGraph() *graph.Graph {
	return self.contracted
}

func _BuildDistanceTable(g *graph.Graph, contracted *graph.Graph, pois []structs.PointOfInterest, nodes Array[int32], results Dict[string, routing.ShortestPathResult]) *DistanceTable {
	table_pois := make([]TablePOI, len(pois))
	for i, poi := range pois {
		table_pois[i] = TablePOI{
			ID:     poi.ID,
			Name:   poi.Name,
			Vertex: nodes[i],
			NodeID: g.GetNodeID(nodes[i]),
			X:      poi.Loc.X(),
			Y:      poi.Loc.Y(),
		}
	}
	distances := NewDict[string, Dict[string, float64]](len(pois))
	for i, from := range pois {
		res := results[from.ID]
		row := NewDict[string, float64](len(pois))
		for j, to := range pois {
			if dist, ok := res.GetDistance(nodes[j]); ok {
				row[to.ID] = dist
			} else if i == j {
				row[to.ID] = 0
			}
		}
		distances[from.ID] = row
	}
	return &DistanceTable{
		POIs:      table_pois,
		Distances: distances,
		Results:   results,
		Stats: TableStats{
			Vertices:           g.AliveCount(),
			Edges:              g.EdgeCount(),
			ContractedVertices: contracted.AliveCount(),
			ContractedEdges:    contracted.EdgeCount(),
		},
		contracted: contracted,
	}
}
