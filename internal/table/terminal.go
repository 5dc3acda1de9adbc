package table

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vigo/cvelookup/internal/colorz"
)

// DefaultMaxCellWidth truncates long descriptions.
const DefaultMaxCellWidth = 60

const separator = " | "

// Terminal draws rows as an aligned text table.
type Terminal struct {
	Colorize     bool
	MaxCellWidth int
}

// Render writes header and rows to w.
func (t Terminal) Render(w io.Writer, rows []Row) error {
	maxWidth := t.MaxCellWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxCellWidth
	}

	cells := make([][]string, len(rows))
	widths := make([]int, ColumnCount)
	for i, col := range Columns {
		widths[i] = utf8.RuneCountInString(col)
	}

	for i, row := range rows {
		if row.IsStatus() {
			continue
		}
		cells[i] = make([]string, ColumnCount)
		for j := range ColumnCount {
			var v string
			if j < len(row.Cells) {
				v = truncate(flatten(row.Cells[j]), maxWidth)
			}
			cells[i][j] = v
			widths[j] = max(widths[j], utf8.RuneCountInString(v))
		}
	}

	total := (ColumnCount - 1) * len(separator)
	for _, cw := range widths {
		total += cw
	}

	bw := bufio.NewWriter(w)

	header := make([]string, ColumnCount)
	rules := make([]string, ColumnCount)
	for i, col := range Columns {
		header[i] = pad(col, widths[i])
		rules[i] = strings.Repeat("-", widths[i])
	}
	if t.Colorize {
		_, _ = bw.WriteString(colorz.Bold + strings.Join(header, separator) + colorz.Reset + "\n")
	} else {
		_, _ = bw.WriteString(strings.Join(header, separator) + "\n")
	}
	_, _ = bw.WriteString(strings.Join(rules, "-+-") + "\n")

	for i, row := range rows {
		if row.IsStatus() {
			_, _ = bw.WriteString(pad(flatten(row.Message), total) + "\n")
			continue
		}

		line := make([]string, ColumnCount)
		for j, v := range cells[i] {
			line[j] = t.paint(pad(v, widths[j]), row.CellColor(j))
		}
		_, _ = bw.WriteString(strings.Join(line, separator) + "\n")
	}

	return bw.Flush()
}

func (t Terminal) paint(s string, c RGB) string {
	if !t.Colorize || c == Neutral {
		return s
	}
	return colorz.Background(c.R, c.G, c.B) + colorz.Black + s + colorz.Reset
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

func pad(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
