package nvd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is rendered in place of any missing value.
const NotAvailable = "N/A"

// sentinel errors.
var (
	ErrNoVulnerabilities = errors.New("no vulnerabilities found")
	ErrMalformedEntry    = errors.New("malformed vulnerability entry")
)

// Record is a CVE projected to display-ready strings.
type Record struct {
	ID           string
	Description  string
	Published    string
	LastModified string
	Severity     string
	Vector       string
	BaseScore    string
}

// Records extracts one Record per vulnerability entry, in response order.
// ErrNoVulnerabilities is returned for an empty result set. An entry without
// a cve object stops extraction with ErrMalformedEntry, records extracted
// before it are returned alongside the error.
func (r *Response) Records() ([]Record, error) {
	if r == nil || len(r.Vulnerabilities) == 0 {
		return nil, ErrNoVulnerabilities
	}

	records := make([]Record, 0, len(r.Vulnerabilities))
	for i, vuln := range r.Vulnerabilities {
		if vuln.CVE == nil {
			return records, fmt.Errorf("%w at index %d", ErrMalformedEntry, i)
		}
		records = append(records, vuln.CVE.Record())
	}

	return records, nil
}

// Record projects the CVE to display strings.
func (c *CVE) Record() Record {
	data := c.Metrics.Primary()

	return Record{
		ID:           orNotAvailable(c.ID),
		Description:  orNotAvailable(c.firstDescription()),
		Published:    FormatDate(c.Published),
		LastModified: FormatDate(c.LastModified),
		Severity:     orNotAvailable(data.BaseSeverity),
		Vector:       orNotAvailable(data.VectorString),
		BaseScore:    FormatScore(data.BaseScore),
	}
}

func (c *CVE) firstDescription() string {
	if len(c.Descriptions) == 0 {
		return ""
	}
	return c.Descriptions[0].Value
}

// Primary returns the cvssData of the first v3.1 metric, else the first v3.0
// metric, else an empty CVSSData.
func (m Metrics) Primary() CVSSData {
	switch {
	case len(m.CVSSMetricV31) > 0:
		return m.CVSSMetricV31[0].CVSSData
	case len(m.CVSSMetricV30) > 0:
		return m.CVSSMetricV30[0].CVSSData
	default:
		return CVSSData{}
	}
}

// FormatDate keeps the date portion of an NVD timestamp.
func FormatDate(s string) string {
	if s == "" {
		return NotAvailable
	}
	date, _, _ := strings.Cut(s, "T")
	return date
}

// FormatScore renders a base score with at least one decimal, 10 -> "10.0".
func FormatScore(score *float64) string {
	if score == nil {
		return NotAvailable
	}

	s := strconv.FormatFloat(*score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
