package pipeline

import (
	"regexp"
	"strings"

	"github.com/dimais77/price-list-analyzer/internal"
)

var fieldPatterns = map[internal.FieldKind]*regexp.Regexp{
	internal.FieldName:   regexp.MustCompile(`(?i)(название|продукт|товар|наименование)`),
	internal.FieldPrice:  regexp.MustCompile(`(?i)(цена|розница)`),
	internal.FieldWeight: regexp.MustCompile(`(?i)(фасовка|масса|вес)`),
}

// ExtractField returns the trimmed cell under the first label, in file
// order, that matches the pattern for kind. An empty string means the row
// carries no usable value for that field.
func ExtractField(row internal.SourceRow, kind internal.FieldKind) string {
	pattern, ok := fieldPatterns[kind]
	if !ok {
		return ""
	}
	for _, label := range row.Labels {
		if pattern.MatchString(label) {
			return strings.TrimSpace(row.Values[label])
		}
	}
	return ""
}
