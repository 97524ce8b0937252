package driving

import "context"

// Importer transforms a tabular export into event documents and upserts
// them into the content store as one batch.
type Importer interface {
	// Import reads the file at path, transforms each row and sends the
	// resulting documents as create-or-replace mutations. Transport
	// failures abort the import and are returned to the caller.
	Import(ctx context.Context, path string) (*ImportSummary, error)
}

// ImportSummary reports the outcome of one import run.
type ImportSummary struct {
	// Read is the number of rows read from the export.
	Read int

	// Skipped counts rows rejected for having no usable identity.
	Skipped int

	// Created counts documents that did not exist before this run.
	Created int

	// Updated counts documents that were replaced.
	Updated int
}
