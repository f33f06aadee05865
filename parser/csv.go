package parser

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/ttpr0/go-roadgraph/geo"
	"github.com/ttpr0/go-roadgraph/structs"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// planar csv input
//*******************************************

// empty cells are nil
type _CSVVertex struct {
	ID *int64   `csv:"id"`
	X  *float64 `csv:"x"`
	Y  *float64 `csv:"y"`
}

type _CSVSegmentRow struct {
	Segment int64  `csv:"segment"`
	Seq     int    `csv:"seq"`
	Vertex  *int64 `csv:"vertex"`
}

type _CSVPOI struct {
	ID   string  `csv:"id"`
	Name string  `csv:"name"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
}

// Reads already projected input.
//
// vertices: id, x, y; segments: segment, seq, vertex (one row per reference);
// pois: id, name, x, y. The pois file is optional.
//
// Vertex rows with an empty id or coordinate are dropped, so references to
// them count as unknown. A segment row with an empty vertex breaks the
// segment like an unknown reference.
func ReadPlanarCSV(vertices, segments, pois string, delimiter rune) (*PlanarData, error) {
	vertex_rows, err := ReadCSVFromFile[_CSVVertex](vertices, delimiter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read vertices")
	}
	coords := NewDict[int64, geo.Coord](vertex_rows.Length())
	incomplete := 0
	for _, v := range vertex_rows {
		if v.ID == nil || v.X == nil || v.Y == nil {
			incomplete += 1
			continue
		}
		coords[*v.ID] = geo.Coord{*v.X, *v.Y}
	}
	if incomplete > 0 {
		slog.Warn("dropped incomplete vertex rows", "count", incomplete)
	}

	segment_rows, err := ReadCSVFromFile[_CSVSegmentRow](segments, delimiter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read segments")
	}

	data := &PlanarData{
		Coords:   coords,
		Segments: _GroupSegments(segment_rows),
		POIs:     NewList[structs.PointOfInterest](10),
	}
	if pois != "" {
		poi_rows, err := ReadCSVFromFile[_CSVPOI](pois, delimiter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read pois")
		}
		for _, p := range poi_rows {
			data.POIs.Add(structs.PointOfInterest{ID: p.ID, Name: p.Name, Loc: geo.Coord{p.X, p.Y}})
		}
	}
	slog.Info("read planar csv", "vertices", coords.Length(), "segments", data.Segments.Length(), "pois", data.POIs.Length())
	return data, nil
}

// Orders rows by segment id and sequence number. Rows without a vertex
// split their segment in two.
func _GroupSegments(rows List[_CSVSegmentRow]) List[structs.RoadSegment] {
	slices.SortStableFunc(rows, func(a, b _CSVSegmentRow) int {
		if a.Segment != b.Segment {
			if a.Segment < b.Segment {
				return -1
			}
			return 1
		}
		return a.Seq - b.Seq
	})
	segments := NewList[structs.RoadSegment](10)
	broken := false
	for _, row := range rows {
		if row.Vertex == nil {
			broken = true
			continue
		}
		l := segments.Length()
		if l == 0 || segments[l-1].ID != row.Segment || broken {
			segments.Add(structs.RoadSegment{ID: row.Segment})
			l += 1
			broken = false
		}
		segments[l-1].Refs = append(segments[l-1].Refs, *row.Vertex)
	}
	return segments
}
