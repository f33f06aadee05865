package main

import (
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/graph"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// router
//**********************************************************

func NewRouter(manager *RoutingManager) *mux.Router {
	app := mux.NewRouter()
	MapGet(app, "/v0/graph", func(req GraphRequest) Result {
		return HandleGraphRequest(manager, req)
	})
	MapGet(app, "/v0/stats", func(none) Result {
		return HandleStatsRequest(manager)
	})
	MapPost(app, "/v0/table", func(req TableRequest) Result {
		return HandleTableRequest(manager, req)
	})
	return app
}

//**********************************************************
// handlers
//**********************************************************

func HandleTableRequest(manager *RoutingManager, req TableRequest) Result {
	slog.Info("Run Table Request", "pois", len(req.POIs))

	pois, err := _RequestPOIs(manager, req)
	if err != nil {
		return BadRequest(err.Error())
	}
	if len(pois) == 0 {
		return BadRequest("no points of interest given")
	}
	table, err := manager.ComputeTable(pois)
	if err != nil {
		if errors.Is(err, ErrDuplicatePOI) || errors.Is(err, graph.ErrEmptyGraph) {
			return BadRequest(err.Error())
		}
		return InternalError(err.Error())
	}
	return OK(table)
}

func HandleGraphRequest(manager *RoutingManager, req GraphRequest) Result {
	proj := None[geo.Projection]()
	if req.Geographic {
		if !manager.GetProjection().HasValue() {
			return BadRequest("graph has no geographic projection")
		}
		proj = manager.GetProjection()
	}
	g := manager.GetGraph()
	if req.Contracted {
		last := manager.GetLastTable()
		if !last.HasValue() {
			return BadRequest("no table has been computed yet")
		}
		g = last.Value.GetContractedGraph()
	}
	return OK(graph.ToFeatureCollection(g, proj))
}

func HandleStatsRequest(manager *RoutingManager) Result {
	g := manager.GetGraph()
	resp := StatsResponse{
		Vertices: g.AliveCount(),
		Edges:    g.EdgeCount(),
		POIs:     manager.GetPOIs().Length(),
		Build:    manager.GetBuildStats(),
	}
	if last := manager.GetLastTable(); last.HasValue() {
		stats := last.Value.Stats
		resp.Table = &stats
	}
	return OK(resp)
}

func _RequestPOIs(manager *RoutingManager, req TableRequest) ([]structs.PointOfInterest, error) {
	if len(req.POIs) == 0 {
		return manager.GetPOIs(), nil
	}
	proj := manager.GetProjection()
	if req.Geographic && !proj.HasValue() {
		return nil, errors.New("geographic coordinates require an osm source")
	}
	pois := make([]structs.PointOfInterest, len(req.POIs))
	for i, p := range req.POIs {
		if p.ID == "" {
			return nil, errors.Errorf("point of interest %d has no id", i)
		}
		loc := p.Coord
		if req.Geographic {
			loc = proj.Value.Project(loc)
		}
		pois[i] = structs.PointOfInterest{ID: p.ID, Name: p.Name, Loc: loc}
	}
	return pois, nil
}
