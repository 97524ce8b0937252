// Package csvfile reads the tabular event export from disk.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RecordReader = (*Reader)(nil)

// Reader reads CSV files with a header row into source records.
type Reader struct{}

// NewReader creates a new CSV record reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadAll reads every data row of the file at path, keyed by the header
// row's column names. Rows shorter than the header leave the missing
// columns absent; columns the transformer does not recognize pass through
// untouched.
func (r *Reader) ReadAll(path string) ([]domain.SourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty, expected a header row",
			domain.ErrInvalidInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []domain.SourceRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}

		record := make(domain.SourceRecord, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}
