package nvd

// Response represents the CVE API 2.0 response envelope.
type Response struct {
	ResultsPerPage  int             `json:"resultsPerPage"`
	StartIndex      int             `json:"startIndex"`
	TotalResults    int             `json:"totalResults"`
	Format          string          `json:"format"`
	Version         string          `json:"version"`
	Timestamp       string          `json:"timestamp"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

// Vulnerability wraps a single CVE item.
type Vulnerability struct {
	CVE *CVE `json:"cve"`
}

// CVE holds the fields of a CVE item this client reads.
type CVE struct {
	ID               string        `json:"id"`
	SourceIdentifier string        `json:"sourceIdentifier"`
	Published        string        `json:"published"`
	LastModified     string        `json:"lastModified"`
	VulnStatus       string        `json:"vulnStatus"`
	Descriptions     []Description `json:"descriptions"`
	Metrics          Metrics       `json:"metrics"`
}

// Description is a language tagged text.
type Description struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// Metrics holds CVSS v3 metric lists. v2 metrics are not read.
type Metrics struct {
	CVSSMetricV31 []CVSSMetric `json:"cvssMetricV31"`
	CVSSMetricV30 []CVSSMetric `json:"cvssMetricV30"`
}

// CVSSMetric is one scoring entry, NVD primary or a CNA secondary.
type CVSSMetric struct {
	Source   string   `json:"source"`
	Type     string   `json:"type"`
	CVSSData CVSSData `json:"cvssData"`
}

// CVSSData carries the v3 base metrics.
type CVSSData struct {
	Version      string   `json:"version"`
	VectorString string   `json:"vectorString"`
	BaseScore    *float64 `json:"baseScore"`
	BaseSeverity string   `json:"baseSeverity"`
}
