package domain

import "strings"

// Query holds the raw search text typed by the user.
// It is replaced wholesale on every keystroke; derived views are
// computed on demand so the raw text stays the single source of truth.
type Query struct {
	// Raw is the query text exactly as typed.
	Raw string
}

// NewQuery creates a query from raw text.
func NewQuery(raw string) Query {
	return Query{Raw: raw}
}

// Trimmed returns the query text with surrounding whitespace removed.
func (q Query) Trimmed() string {
	return strings.TrimSpace(q.Raw)
}

// IsEmpty reports whether the query contains no searchable text.
// Whitespace-only input counts as empty.
func (q Query) IsEmpty() bool {
	return q.Trimmed() == ""
}
