package main

import (
	"github.com/ttpr0/go-roadgraph/geo"
)

type POIParams struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// planar x/y, or lon/lat if the request is geographic
	Coord geo.Coord `json:"coord"`
}

type TableRequest struct {
	// empty uses the points of interest of the source
	POIs []POIParams `json:"pois"`
	// coordinates are lon/lat and get projected, osm sources only
	Geographic bool `json:"geographic"`
}

type GraphRequest struct {
	// export the graph of the last table instead of the road graph
	Contracted bool `json:"contracted"`
	// export lon/lat instead of planar coordinates, osm sources only
	Geographic bool `json:"geographic"`
}
