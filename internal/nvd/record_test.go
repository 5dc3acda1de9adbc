package nvd_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigo/cvelookup/internal/nvd"
)

func decode(t *testing.T, body string) *nvd.Response {
	t.Helper()

	var resp nvd.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	return &resp
}

func TestRecordsFromFixture(t *testing.T) {
	raw, err := os.ReadFile("testdata/cve-2021-34527.json")
	require.NoError(t, err)

	records, err := decode(t, string(raw)).Records()
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, nvd.Record{
		ID:           "CVE-2021-34527",
		Description:  "Windows Print Spooler Remote Code Execution Vulnerability",
		Published:    "2021-07-02",
		LastModified: "2024-04-10",
		Severity:     "HIGH",
		Vector:       "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H",
		BaseScore:    "8.8",
	}, records[0])
}

func TestRecordsEmpty(t *testing.T) {
	_, err := decode(t, `{"vulnerabilities": []}`).Records()
	assert.ErrorIs(t, err, nvd.ErrNoVulnerabilities)

	_, err = decode(t, `{"totalResults": 0}`).Records()
	assert.ErrorIs(t, err, nvd.ErrNoVulnerabilities)

	var nilResp *nvd.Response
	_, err = nilResp.Records()
	assert.ErrorIs(t, err, nvd.ErrNoVulnerabilities)
}

func TestRecordsMissingFields(t *testing.T) {
	records, err := decode(t, `{"vulnerabilities": [{"cve": {"published": "2023-01-01T00:00:00.000"}}]}`).Records()
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, nvd.NotAvailable, rec.ID)
	assert.Equal(t, nvd.NotAvailable, rec.Description)
	assert.Equal(t, "2023-01-01", rec.Published)
	assert.Equal(t, nvd.NotAvailable, rec.LastModified)
	assert.Equal(t, nvd.NotAvailable, rec.Severity)
	assert.Equal(t, nvd.NotAvailable, rec.Vector)
	assert.Equal(t, nvd.NotAvailable, rec.BaseScore)
}

func TestRecordsFallsBackToV30(t *testing.T) {
	body := `{"vulnerabilities": [{"cve": {"id": "CVE-2019-0001", "metrics": {
		"cvssMetricV30": [
			{"cvssData": {"vectorString": "CVSS:3.0/AV:N", "baseScore": 10, "baseSeverity": "CRITICAL"}},
			{"cvssData": {"vectorString": "ignored", "baseScore": 1.0, "baseSeverity": "LOW"}}
		]}}}]}`

	records, err := decode(t, body).Records()
	require.NoError(t, err)

	assert.Equal(t, "CRITICAL", records[0].Severity)
	assert.Equal(t, "CVSS:3.0/AV:N", records[0].Vector)
	assert.Equal(t, "10.0", records[0].BaseScore)
}

func TestRecordsPrefersV31(t *testing.T) {
	body := `{"vulnerabilities": [{"cve": {"id": "CVE-2020-0001", "metrics": {
		"cvssMetricV30": [{"cvssData": {"baseSeverity": "LOW"}}],
		"cvssMetricV31": [{"cvssData": {"baseSeverity": "Medium"}}]
	}}}]}`

	records, err := decode(t, body).Records()
	require.NoError(t, err)
	assert.Equal(t, "Medium", records[0].Severity)
}

func TestRecordsMultipleEntriesKeepOrder(t *testing.T) {
	body := `{"vulnerabilities": [{"cve": {"id": "CVE-1"}}, {"cve": {"id": "CVE-2"}}]}`

	records, err := decode(t, body).Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CVE-1", records[0].ID)
	assert.Equal(t, "CVE-2", records[1].ID)
}

func TestRecordsMalformedEntry(t *testing.T) {
	body := `{"vulnerabilities": [{"cve": {"id": "CVE-1"}}, {}, {"cve": {"id": "CVE-3"}}]}`

	records, err := decode(t, body).Records()
	assert.ErrorIs(t, err, nvd.ErrMalformedEntry)
	require.Len(t, records, 1)
	assert.Equal(t, "CVE-1", records[0].ID)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2021-07-02", nvd.FormatDate("2021-07-02T22:15:08.313"))
	assert.Equal(t, "2021-07-02", nvd.FormatDate("2021-07-02"))
	assert.Equal(t, nvd.NotAvailable, nvd.FormatDate(""))
}

func TestFormatScore(t *testing.T) {
	score := func(f float64) *float64 { return &f }

	assert.Equal(t, "9.8", nvd.FormatScore(score(9.8)))
	assert.Equal(t, "10.0", nvd.FormatScore(score(10)))
	assert.Equal(t, "0.0", nvd.FormatScore(score(0)))
	assert.Equal(t, nvd.NotAvailable, nvd.FormatScore(nil))
}
