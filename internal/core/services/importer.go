package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driven"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driving"
	"github.com/eventbyen/eventsync-cli/internal/logger"
	"github.com/eventbyen/eventsync-cli/internal/normalisers/eventrow"
)

// Ensure Importer implements the interface.
var _ driving.Importer = (*Importer)(nil)

// Importer reads the tabular export, transforms each row into an event
// document and upserts the documents as one mutation batch.
type Importer struct {
	records driven.RecordReader
	store   driven.ContentStore
}

// NewImporter creates a new import service.
func NewImporter(records driven.RecordReader, store driven.ContentStore) *Importer {
	return &Importer{
		records: records,
		store:   store,
	}
}

// Import runs the full import pipeline for the export at path.
//
// Rows are transformed one at a time in input order. Rows without a usable
// identity are skipped and counted, never given an invented id. All
// surviving documents go to the store as a single batch of create-or-replace
// mutations; a transport failure aborts the run and surfaces to the caller.
func (s *Importer) Import(ctx context.Context, path string) (*driving.ImportSummary, error) {
	records, err := s.records.ReadAll(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	summary := &driving.ImportSummary{Read: len(records)}

	mutations := make([]domain.Mutation, 0, len(records))
	for _, record := range records {
		doc, err := eventrow.Normalise(record)
		if err != nil {
			if errors.Is(err, domain.ErrDegenerateIdentity) {
				summary.Skipped++
				logger.Warn("Skipping row: %v", err)
				continue
			}
			return nil, fmt.Errorf("transform row: %w", err)
		}

		logger.Debug("Transformed %s", doc.ID)
		mutations = append(mutations, domain.Mutation{CreateOrReplace: doc})
	}

	if len(mutations) == 0 {
		logger.Info("No importable rows in %s", path)
		return summary, nil
	}

	result, err := s.store.Mutate(ctx, mutations)
	if err != nil {
		return nil, fmt.Errorf("upsert events: %w", err)
	}

	summary.Created = result.Created
	summary.Updated = result.Updated

	logger.Info("Import complete: %d created, %d updated, %d skipped",
		summary.Created, summary.Updated, summary.Skipped)
	return summary, nil
}
