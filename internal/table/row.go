/*
Package table implements result rows and their renderers.
*/
package table

import "github.com/vigo/cvelookup/internal/nvd"

// Columns is the fixed column order.
var Columns = []string{
	"CVE ID",
	"Description",
	"Published Date",
	"Last Modified Date",
	"Severity",
	"Vector",
	"Base Score",
}

// column indexes.
const (
	ColumnCount    = 7
	SeverityColumn = 4
)

// status messages.
const (
	MessageNoInput           = "Please enter at least one CVE ID."
	MessageNoVulnerabilities = "No vulnerabilities found for the given CVE ID."
)

// Row is either a record row with ColumnCount cells or a status row whose
// Message spans the whole width.
type Row struct {
	Cells    []string
	Message  string
	Severity Severity
}

// RecordRow projects a record in column order.
func RecordRow(r nvd.Record) Row {
	return Row{
		Cells: []string{
			r.ID,
			r.Description,
			r.Published,
			r.LastModified,
			r.Severity,
			r.Vector,
			r.BaseScore,
		},
		Severity: ParseSeverity(r.Severity),
	}
}

// StatusRow builds a full-width message row.
func StatusRow(message string) Row {
	return Row{Message: message}
}

// IsStatus reports whether r is a status row.
func (r Row) IsStatus() bool {
	return r.Cells == nil
}

// CellColor returns the background of column i, only the severity column
// is colored.
func (r Row) CellColor(i int) RGB {
	if i == SeverityColumn {
		return r.Severity.Color()
	}
	return Neutral
}
