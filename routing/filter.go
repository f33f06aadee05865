package routing

import (
	. "github.com/ttpr0/go-roadgraph/util"
)

//*******************************************
// result filter
//*******************************************

func RelevantSet(nodes ...int32) Dict[int32, bool] {
	relevant := NewDict[int32, bool](len(nodes))
	for _, node := range nodes {
		relevant[node] = true
	}
	return relevant
}

// Returns a copy of res restricted to the relevant vertices.
func FilterResult(res ShortestPathResult, relevant Dict[int32, bool]) ShortestPathResult {
	filtered := ShortestPathResult{
		Source:       res.Source,
		Distances:    NewDict[int32, float64](relevant.Length()),
		Predecessors: NewDict[int32, int32](relevant.Length()),
	}
	for node, dist := range res.Distances {
		if relevant[node] {
			filtered.Distances[node] = dist
		}
	}
	for node, prev := range res.Predecessors {
		if relevant[node] {
			filtered.Predecessors[node] = prev
		}
	}
	return filtered
}

func FilterResults(results Dict[string, ShortestPathResult], relevant Dict[int32, bool]) Dict[string, ShortestPathResult] {
	filtered := NewDict[string, ShortestPathResult](results.Length())
	for key, res := range results {
		filtered[key] = FilterResult(res, relevant)
	}
	return filtered
}
