package domain

import "strings"

// SourceRecord is one row of the tabular export, keyed by column name.
// Records are transient: they exist only for the duration of a
// transformation call and are never persisted.
type SourceRecord map[string]string

// Get returns the trimmed value of a column.
// Missing columns return the empty string.
func (r SourceRecord) Get(column string) string {
	return strings.TrimSpace(r[column])
}
