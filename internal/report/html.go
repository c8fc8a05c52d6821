package report

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/dimais77/price-list-analyzer/internal"
)

var pageTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Результаты поиска</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #444; padding: 4px 8px; }
th { background: #eee; }
</style>
</head>
<body>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type pageData struct {
	Headers []string
	Rows    [][]string
}

// WriteHTML renders records into a standalone page at path, replacing any
// previous file.
func WriteHTML(path string, records []internal.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	data := pageData{Headers: internal.ResultHeaders, Rows: resultRows(records)}
	if err := pageTemplate.Execute(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
