package driven

import "github.com/eventbyen/eventsync-cli/internal/core/domain"

// RecordReader reads a tabular export into source records.
type RecordReader interface {
	// ReadAll reads every row of the file at path, keyed by the header
	// row's column names.
	ReadAll(path string) ([]domain.SourceRecord, error)
}
