package report

import (
	"strconv"

	"github.com/dimais77/price-list-analyzer/internal"
)

// resultCells renders one ranked record in result column order: rank,
// name, price, weight, unit price, source file.
func resultCells(rank int, record internal.Record) []string {
	return []string{
		strconv.Itoa(rank),
		record.Name,
		record.Price.String(),
		record.Weight.String(),
		record.UnitPrice.StringFixed(2),
		record.SourceID,
	}
}

func resultRows(records []internal.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, resultCells(i+1, record))
	}
	return rows
}
