package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

// Reads roads and places from an .osm/.xml or .pbf file.
//
// Ways are read in a first pass, nodes in a second one. Relations are ignored.
func ParseOSM(ctx context.Context, filename string, decoder IOSMDecoder) (*RoadData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open osm file")
	}
	defer file.Close()

	format, err := _GetFormat(filename)
	if err != nil {
		return nil, err
	}

	data := &RoadData{
		Nodes:    NewDict[int64, geo.Coord](10000),
		Segments: NewList[structs.RoadSegment](1000),
		Places:   NewList[structs.PointOfInterest](100),
	}
	road_nodes := NewDict[int64, bool](10000)

	scanner := _NewScanner(ctx, file, format, false)
	err = _WayHandler(scanner, decoder, data, road_nodes)
	scanner.Close()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan ways")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to rewind osm file")
	}
	scanner = _NewScanner(ctx, file, format, true)
	err = _NodeHandler(scanner, decoder, data, road_nodes)
	scanner.Close()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan nodes")
	}

	for id := range road_nodes {
		if !data.Nodes.ContainsKey(id) {
			data.MissingNodes += 1
		}
	}
	slog.Info("parsed osm file", "file", filename, "segments", data.Segments.Length(),
		"nodes", data.Nodes.Length(), "places", data.Places.Length(), "missing", data.MissingNodes)
	return data, nil
}

//*******************************************
// osm scanners
//*******************************************

type _Format byte

const (
	_XML _Format = 0
	_PBF _Format = 1
)

func _GetFormat(filename string) (_Format, error) {
	switch {
	case strings.HasSuffix(filename, ".pbf"):
		return _PBF, nil
	case filepath.Ext(filename) == ".osm", filepath.Ext(filename) == ".xml":
		return _XML, nil
	default:
		return 0, errors.Errorf("file extension of '%s' is not handled", filename)
	}
}

func _NewScanner(ctx context.Context, r io.Reader, format _Format, nodes bool) osm.Scanner {
	if format == _PBF {
		scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
		scanner.SkipRelations = true
		scanner.SkipNodes = !nodes
		scanner.SkipWays = nodes
		return scanner
	}
	return osmxml.New(ctx, r)
}

//*******************************************
// osm handler methods
//*******************************************

func _WayHandler(scanner osm.Scanner, decoder IOSMDecoder, data *RoadData, road_nodes Dict[int64, bool]) error {
	c := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tags := Dict[string, string](way.TagMap())
		if !decoder.IsRoad(tags) {
			continue
		}
		c += 1
		if c%10000 == 0 {
			slog.Debug(fmt.Sprintf("%v ways", c))
		}
		node_ids := way.Nodes.NodeIDs()
		refs := make([]int64, len(node_ids))
		for i, id := range node_ids {
			refs[i] = int64(id)
			road_nodes[int64(id)] = true
		}
		data.Segments.Add(structs.RoadSegment{
			ID:   int64(way.ID),
			Refs: refs,
		})
	}
	return scanner.Err()
}

func _NodeHandler(scanner osm.Scanner, decoder IOSMDecoder, data *RoadData, road_nodes Dict[int64, bool]) error {
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		id := int64(node.ID)
		loc := geo.Coord{node.Lon, node.Lat}
		if road_nodes.ContainsKey(id) {
			data.Nodes[id] = loc
		}
		if len(node.Tags) == 0 {
			continue
		}
		tags := Dict[string, string](node.TagMap())
		if decoder.IsPlace(tags) {
			data.Places.Add(structs.PointOfInterest{
				ID:   fmt.Sprintf("node/%d", id),
				Name: tags.Get("name"),
				Loc:  loc,
			})
		}
	}
	return scanner.Err()
}
