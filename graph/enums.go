package graph

import (
	"github.com/pkg/errors"
)

//*******************************************
// enums
//*******************************************

type IndexType byte

const (
	QUADTREE   IndexType = 0
	BRUTEFORCE IndexType = 1
)

func (self IndexType) String() string {
	switch self {
	case QUADTREE:
		return "quadtree"
	case BRUTEFORCE:
		return "bruteforce"
	default:
		panic("unknown index type")
	}
}

func IndexTypeFromString(s string) (IndexType, error) {
	switch s {
	case "quadtree":
		return QUADTREE, nil
	case "bruteforce":
		return BRUTEFORCE, nil
	default:
		return 0, errors.Errorf("unknown index type %q", s)
	}
}

// Builds a nearest vertex index of the given type.
func NewGraphIndex(g IGraph, typ IndexType) IGraphIndex {
	switch typ {
	case BRUTEFORCE:
		return NewBruteForceIndex(g)
	default:
		return NewQuadTreeIndex(g)
	}
}
