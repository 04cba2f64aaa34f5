// Package sqlite implements the index port on SQLite FTS5.
//
// The backend is local and keyword-only: bm25 ranking over name and
// content. Hybrid configurations with a vector clause degrade
// gracefully to keyword ranking.
package sqlite
