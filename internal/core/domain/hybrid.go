package domain

// DefaultNeighbourCount is the number of embedding-space neighbours
// requested when a vector clause is attached to a query.
const DefaultNeighbourCount = 50

// maxVectorClauseLen bounds the text sent as a vector clause. Backends
// embed the clause, and very long inputs add cost without improving
// recall.
const maxVectorClauseLen = 1024

// HybridConfig describes how the index should rank a query: keyword
// matching always, plus an optional embedding-similarity clause.
type HybridConfig struct {
	// Semantic reports whether a vector clause is attached.
	Semantic bool

	// VectorClause is the text the index should embed and rank
	// neighbours for. Empty when Semantic is false.
	VectorClause string

	// NeighbourCount is the k for nearest-neighbour blending.
	// Zero when Semantic is false.
	NeighbourCount int
}

// ResolveHybrid maps a query to its search configuration.
// Empty or whitespace-only queries get pure keyword matching; anything
// else additionally requests embedding-similarity ranking over the
// trimmed text with the default neighbour count.
//
// The function is total and deterministic: equal inputs produce equal
// configurations, so results may be memoised keyed on Query.Trimmed().
func ResolveHybrid(q Query) HybridConfig {
	return ResolveHybridK(q, DefaultNeighbourCount)
}

// ResolveHybridK is ResolveHybrid with a configured neighbour count.
// Non-positive k falls back to the default so an unset setting never
// produces a degenerate request.
func ResolveHybridK(q Query, k int) HybridConfig {
	trimmed := q.Trimmed()
	if trimmed == "" {
		return HybridConfig{}
	}

	if len(trimmed) > maxVectorClauseLen {
		trimmed = trimmed[:maxVectorClauseLen]
	}
	if k <= 0 {
		k = DefaultNeighbourCount
	}

	return HybridConfig{
		Semantic:       true,
		VectorClause:   trimmed,
		NeighbourCount: k,
	}
}
