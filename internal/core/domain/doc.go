// Package domain defines the core business entities for eventsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceRecord: One row of the tabular export, keyed by column name
//   - EventDocument: The normalized event persisted to the content store
//   - Mutation: A tagged create-or-replace or patch operation
//   - ImageCandidate: An event still holding an external image URL
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
