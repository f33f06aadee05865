package parser

import (
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsRoad(tags Dict[string, string]) bool
	IsPlace(tags Dict[string, string]) bool
}

var DEFAULT_HIGHWAYS = []string{
	"motorway", "trunk", "primary", "secondary", "tertiary", "residential", "unclassified",
	"motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link",
}

var DEFAULT_PLACES = []string{
	"city", "borough", "suburb", "quarter", "neighbourhood", "city_block", "town",
	"village", "hamlet", "isolated_dwelling", "farm",
}

// Selects roads by their highway tag and points of interest by their place tag.
type TagDecoder struct {
	highways Dict[string, bool]
	places   Dict[string, bool]
}

// Empty selectors fall back to DEFAULT_HIGHWAYS and DEFAULT_PLACES.
func NewTagDecoder(highways []string, places []string) *TagDecoder {
	if len(highways) == 0 {
		highways = DEFAULT_HIGHWAYS
	}
	if len(places) == 0 {
		places = DEFAULT_PLACES
	}
	decoder := &TagDecoder{
		highways: NewDict[string, bool](len(highways)),
		places:   NewDict[string, bool](len(places)),
	}
	for _, h := range highways {
		decoder.highways[h] = true
	}
	for _, p := range places {
		decoder.places[p] = true
	}
	return decoder
}

func (self *TagDecoder) IsRoad(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	return self.highways.ContainsKey(tags.Get("highway"))
}

func (self *TagDecoder) IsPlace(tags Dict[string, string]) bool {
	if !tags.ContainsKey("place") {
		return false
	}
	return self.places.ContainsKey(tags.Get("place"))
}
