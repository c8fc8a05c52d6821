package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dimais77/price-list-analyzer/internal"
)

// WriteTable prints records as a bordered grid. Column widths follow the
// display width of the widest cell, so Cyrillic text stays aligned.
func WriteTable(w io.Writer, records []internal.Record) {
	rows := resultRows(records)

	widths := make([]int, len(internal.ResultHeaders))
	for i, header := range internal.ResultHeaders {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, cells := range rows {
		for i, cell := range cells {
			if width := runewidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	border := gridLine(widths, "-")
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, gridRow(internal.ResultHeaders, widths))
	fmt.Fprintln(w, gridLine(widths, "="))
	for _, cells := range rows {
		fmt.Fprintln(w, gridRow(cells, widths))
		fmt.Fprintln(w, border)
	}
}

func gridLine(widths []int, fill string) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		sb.WriteString("+")
	}
	return sb.String()
}

func gridRow(cells []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(cell)+1))
		sb.WriteString("|")
	}
	return sb.String()
}
