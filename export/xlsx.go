package export

import (
	"fmt"
	"io"

	"github.com/patrickkleiner/inventory"
	"github.com/xuri/excelize/v2"
)

func exportXLSX(w io.Writer, records []*inventory.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	cols := columns(records)

	writeRow := func(n int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := writeRow(1, cols); err != nil {
		return fmt.Errorf("cannot build workbook: %w", err)
	}
	for i, r := range records {
		if err := writeRow(i+2, row(r, cols)); err != nil {
			return fmt.Errorf("cannot build workbook: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}
