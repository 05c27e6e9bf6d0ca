// Package export serializes a subset of inventory records into one of the
// supported external formats: json, html, txt and xlsx.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/patrickkleiner/inventory"
)

// Format is one of the supported export formats.
type Format string

const (
	JSON Format = "json"
	HTML Format = "html"
	TXT  Format = "txt"
	XLSX Format = "xlsx"
)

// ErrNoRecords is returned when an export is requested for an empty subset.
// It is a notice, not a failure: nothing gets written.
var ErrNoRecords = errors.New("no records to export")

// ParseFormat parses a format tag. Anything outside the supported set is an
// error, and nothing will be written for it.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, HTML, TXT, XLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %q (want json, html, txt or xlsx)", s)
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string { return "." + string(f) }

// Export writes the given records to w in the requested format. The column
// set is the field names of the first record, preceded by the record
// identifier; all formats render the same columns. An empty subset returns
// ErrNoRecords before anything is written.
func Export(w io.Writer, records []*inventory.Record, format Format) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	switch format {
	case JSON:
		return exportJSON(w, records)
	case HTML:
		return exportHTML(w, records)
	case TXT:
		return exportTXT(w, records)
	case XLSX:
		return exportXLSX(w, records)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}

func exportJSON(w io.Writer, records []*inventory.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// columns returns the exported column set: "id" then the field names of the
// first record.
func columns(records []*inventory.Record) []string {
	return append([]string{"id"}, records[0].FieldNames()...)
}

// row returns one record's values for the given column set.
func row(r *inventory.Record, cols []string) []string {
	values := make([]string, len(cols))
	values[0] = r.ID()
	copy(values[1:], r.Values(cols[1:]))
	return values
}
