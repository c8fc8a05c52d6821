package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/dimais77/price-list-analyzer/internal"
)

// WriteXLSX saves records as a spreadsheet at path. Prices and weights go
// in as numbers so the file sorts and sums correctly.
func WriteXLSX(path string, records []internal.Record) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, header := range internal.ResultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for i, record := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, i+1)
		set(2, record.Name)
		set(3, record.Price.InexactFloat64())
		set(4, record.Weight.InexactFloat64())
		set(5, record.UnitPrice.InexactFloat64())
		set(6, record.SourceID)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
