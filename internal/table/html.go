package table

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; margin: 16px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d0d0d0; padding: 4px 8px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<table>
<thead><tr>{{ range .Columns }}<th>{{ . }}</th>{{ end }}</tr></thead>
<tbody>
{{- range .Rows }}
{{- if .Message }}
<tr><td colspan="{{ $.Span }}">{{ .Message }}</td></tr>
{{- else }}
<tr>{{ range .Cells }}<td{{ if .Background }} style="background-color: {{ .Background }}"{{ end }}>{{ .Text }}</td>{{ end }}</tr>
{{- end }}
{{- end }}
</tbody>
</table>
</body>
</html>
`))

type htmlCell struct {
	Text       string
	Background template.CSS
}

type htmlRow struct {
	Message string
	Cells   []htmlCell
}

// HTML writes rows as a standalone html document.
func HTML(w io.Writer, title string, rows []Row) error {
	data := struct {
		Title   string
		Columns []string
		Span    int
		Rows    []htmlRow
	}{
		Title:   title,
		Columns: Columns,
		Span:    ColumnCount,
	}

	for _, row := range rows {
		if row.IsStatus() {
			data.Rows = append(data.Rows, htmlRow{Message: row.Message})
			continue
		}

		hr := htmlRow{Cells: make([]htmlCell, len(row.Cells))}
		for i, v := range row.Cells {
			hr.Cells[i].Text = v
			if i == SeverityColumn {
				hr.Cells[i].Background = template.CSS(row.CellColor(i).Hex())
			}
		}
		data.Rows = append(data.Rows, hr)
	}

	return htmlTemplate.Execute(w, data)
}
