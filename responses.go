package main

import (
	"github.com/ttpr0/go-roadgraph/graph"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type StatsResponse struct {
	Vertices int              `json:"vertices"`
	Edges    int              `json:"edges"`
	POIs     int              `json:"pois"`
	Build    graph.BuildStats `json:"build"`
	// stats of the last table, if any
	Table *TableStats `json:"table,omitempty"`
}
