package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vigo/cvelookup/internal/table"
)

func TestParseSeverity(t *testing.T) {
	cases := map[string]table.Severity{
		"LOW":      table.SeverityLow,
		"Medium":   table.SeverityMedium,
		"high":     table.SeverityHigh,
		"High":     table.SeverityHigh,
		"CRITICAL": table.SeverityCritical,
		" low ":    table.SeverityUnknown,
		"N/A":      table.SeverityUnknown,
		"NONE":     table.SeverityUnknown,
		"":         table.SeverityUnknown,
	}

	for in, want := range cases {
		assert.Equal(t, want, table.ParseSeverity(in), in)
	}
}

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, table.RGB{76, 175, 80}, table.SeverityLow.Color())
	assert.Equal(t, table.RGB{255, 193, 7}, table.SeverityMedium.Color())
	assert.Equal(t, table.RGB{253, 67, 0}, table.SeverityHigh.Color())
	assert.Equal(t, table.RGB{185, 4, 4}, table.SeverityCritical.Color())
	assert.Equal(t, table.Neutral, table.SeverityUnknown.Color())
}

func TestSeverityColorIgnoresCase(t *testing.T) {
	want := table.ParseSeverity("high").Color()

	for _, s := range []string{"High", "HIGH", "hIgH"} {
		assert.Equal(t, want, table.ParseSeverity(s).Color(), s)
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "low", table.SeverityLow.String())
	assert.Equal(t, "medium", table.SeverityMedium.String())
	assert.Equal(t, "high", table.SeverityHigh.String())
	assert.Equal(t, "critical", table.SeverityCritical.String())
	assert.Equal(t, "unknown", table.SeverityUnknown.String())
	assert.Equal(t, "unknown", table.Severity(42).String())
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#fd4300", table.RGB{253, 67, 0}.Hex())
	assert.Equal(t, "#ffffff", table.Neutral.Hex())
}
