package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigo/cvelookup/internal/colorz"
	"github.com/vigo/cvelookup/internal/nvd"
	"github.com/vigo/cvelookup/internal/table"
)

var sample = nvd.Record{
	ID:           "CVE-2021-34527",
	Description:  "Windows Print Spooler Remote Code Execution Vulnerability",
	Published:    "2021-07-02",
	LastModified: nvd.NotAvailable,
	Severity:     "High",
	Vector:       "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H",
	BaseScore:    "8.8",
}

func TestRecordRow(t *testing.T) {
	row := table.RecordRow(sample)

	require.Len(t, row.Cells, table.ColumnCount)
	assert.False(t, row.IsStatus())
	assert.Equal(t, "CVE-2021-34527", row.Cells[0])
	assert.Equal(t, nvd.NotAvailable, row.Cells[3])
	assert.Equal(t, "High", row.Cells[table.SeverityColumn])
	assert.Equal(t, "8.8", row.Cells[6])
	assert.Equal(t, table.SeverityHigh.Color(), row.CellColor(table.SeverityColumn))
	assert.Equal(t, table.Neutral, row.CellColor(0))
}

func TestStatusRow(t *testing.T) {
	row := table.StatusRow(table.MessageNoInput)

	assert.True(t, row.IsStatus())
	assert.Equal(t, table.MessageNoInput, row.Message)
}

func TestTerminalRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	rows := []table.Row{
		table.StatusRow("CVE-0000-0000: unexpected status: 404 Not Found"),
		table.RecordRow(sample),
	}

	require.NoError(t, table.Terminal{MaxCellWidth: 20}.Render(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "CVE ID"))
	for _, col := range table.Columns {
		assert.Contains(t, lines[0], col)
	}
	assert.True(t, strings.HasPrefix(lines[2], "CVE-0000-0000: unexpected status"))
	assert.Len(t, lines[2], len(lines[0]))
	assert.Contains(t, lines[3], "Windows Print Spo...")
	assert.Contains(t, lines[3], "N/A")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestTerminalRenderColorsSeverityOnly(t *testing.T) {
	var buf bytes.Buffer
	c := table.SeverityHigh.Color()

	require.NoError(t, table.Terminal{Colorize: true}.Render(&buf, []table.Row{table.RecordRow(sample)}))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, colorz.Background(c.R, c.G, c.B)))
}

func TestTerminalRenderUnknownSeverityIsNeutral(t *testing.T) {
	var buf bytes.Buffer
	rec := sample
	rec.Severity = nvd.NotAvailable

	require.NoError(t, table.Terminal{Colorize: true}.Render(&buf, []table.Row{table.RecordRow(rec)}))
	assert.NotContains(t, buf.String(), "\033[48;2;")
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	rec := sample
	rec.Description = "<script>alert(1)</script>"
	rows := []table.Row{
		table.RecordRow(rec),
		table.StatusRow(table.MessageNoVulnerabilities),
	}

	require.NoError(t, table.HTML(&buf, "CVE Details", rows))

	out := buf.String()
	assert.Contains(t, out, "<title>CVE Details</title>")
	assert.Contains(t, out, "<th>Last Modified Date</th>")
	assert.Contains(t, out, `style="background-color: #fd4300"`)
	assert.Contains(t, out, `<td colspan="7">No vulnerabilities found for the given CVE ID.</td>`)
	assert.NotContains(t, out, "<script>")
	assert.Equal(t, 1, strings.Count(out, "background-color"))
}
