package domain

// SearchRequest is a sequence-tagged query the session sends to the
// index. The sequence number implements latest-query-wins: responses
// carrying a stale sequence are ignored on arrival, which is the only
// cancellation the session performs.
type SearchRequest struct {
	// Seq is the monotonically increasing request number.
	Seq uint64

	// Text is the trimmed query text. Empty text browses the whole
	// index with keyword ranking only.
	Text string

	// Hybrid is the resolved search configuration for Text.
	Hybrid HybridConfig

	// Offset is the pagination offset (pageIndex * pageSize).
	Offset int

	// Limit is the page size.
	Limit int
}

// SearchOutcome carries a request's results back to the session.
// Err is set for transient index failures; Hits and TotalHits are only
// meaningful when Err is nil.
type SearchOutcome struct {
	// Request is the originating request, sequence tag included.
	Request SearchRequest

	// Hits is the result page.
	Hits []Hit

	// TotalHits is the authoritative match count reported by the
	// index. The session applies the cap limit locally.
	TotalHits int

	// Err is the transient failure, if any.
	Err error
}
