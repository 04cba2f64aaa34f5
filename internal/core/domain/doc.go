// Package domain defines the core business entities for Perch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Query: The raw search text and its derived views
//   - HybridConfig: The keyword + vector search configuration
//   - Pagination: Page bounds over a capped hit count
//   - Selection: Hover and multi-select state for result rows
//   - Hit: A schema-tolerant index result record
//   - FileOperation: A validated file-action request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
