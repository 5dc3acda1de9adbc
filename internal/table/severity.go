package table

import (
	"fmt"
	"strings"
)

// Severity is a CVSS v3 qualitative rating.
type Severity int

// severities.
const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = map[string]Severity{
	"low":      SeverityLow,
	"medium":   SeverityMedium,
	"high":     SeverityHigh,
	"critical": SeverityCritical,
}

// ParseSeverity matches case-insensitively, anything else is SeverityUnknown.
func ParseSeverity(s string) Severity {
	return severityNames[strings.ToLower(s)]
}

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns css notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Neutral is the background of cells with unknown severity.
var Neutral = RGB{255, 255, 255}

var palette = map[Severity]RGB{
	SeverityLow:      {76, 175, 80},
	SeverityMedium:   {255, 193, 7},
	SeverityHigh:     {253, 67, 0},
	SeverityCritical: {185, 4, 4},
}

// Color returns the severity cell background.
func (s Severity) Color() RGB {
	if c, ok := palette[s]; ok {
		return c
	}
	return Neutral
}
