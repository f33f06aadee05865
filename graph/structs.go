package graph

//*******************************************
// edgeref struct
//*******************************************

// Reference to an edge as seen from one of its endpoints.
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}

func CreateEdgeRef(edge int32, other int32) EdgeRef {
	return EdgeRef{
		EdgeID:  edge,
		OtherID: other,
	}
}
