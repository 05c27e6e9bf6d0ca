package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// This file contains the one-time initial import: the bootstrap that turns a
// user-chosen spreadsheet into the persisted collection. Every row becomes a
// record; the Last Updated stamp is injected, and rows without a Tenant get
// the importing principal as owner (or stay unowned when the administrator
// imports).

// ImportFile imports the spreadsheet at path, dispatching on its extension.
// Supported: .xlsx and .csv.
func ImportFile(path string, principal Principal) ([]*Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open spreadsheet %q: %w", path, err)
		}
		defer f.Close()
		return importWorkbook(f, principal)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open spreadsheet %q: %w", path, err)
		}
		defer f.Close()
		return ImportCSV(f, principal)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet format %q (want .xlsx or .csv)", ext)
	}
}

// ImportXLSX imports the first sheet of an xlsx workbook read from r. The
// first row is the header; every following row becomes a record.
func ImportXLSX(r io.Reader, principal Principal) ([]*Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook: %w", err)
	}
	defer f.Close()
	return importWorkbook(f, principal)
}

func importWorkbook(f *excelize.File, principal Principal) ([]*Record, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheets[0], err)
	}
	return recordsFromRows(rows, principal)
}

// ImportCSV imports a comma-separated spreadsheet read from r. The first
// line is the header; every following line becomes a record.
func ImportCSV(r io.Reader, principal Principal) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, missing cells read as ""
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	return recordsFromRows(rows, principal)
}

// recordsFromRows turns a header row plus data rows into stamped records.
func recordsFromRows(rows [][]string, principal Principal) ([]*Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet has no header row")
	}
	header := rows[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("spreadsheet has an empty header row")
	}
	for _, name := range header {
		if name == idProperty {
			return nil, fmt.Errorf("column %q is reserved for record identifiers; rename it before importing", idProperty)
		}
	}

	now := time.Now()
	var records []*Record
	for _, row := range rows[1:] {
		rec := NewRecord()
		for i, name := range header {
			if name == "" {
				continue
			}
			var value string
			if i < len(row) {
				value = row[i]
			}
			rec.Set(name, value)
		}
		stampImported(rec, principal, now)
		records = append(records, rec)
	}
	return records, nil
}

// stampImported injects the reserved fields an imported row may lack: a
// fresh Last Updated stamp, and the importing principal as owner when the
// row has no Tenant yet. The administrator leaves unowned rows unowned.
func stampImported(rec *Record, principal Principal, now time.Time) {
	rec.Set(LastUpdatedField, Stamp(now))
	if rec.Tenant() == "" {
		owner := ""
		if !principal.IsAdmin() {
			owner = string(principal)
		}
		rec.Set(TenantField, owner)
	}
}
