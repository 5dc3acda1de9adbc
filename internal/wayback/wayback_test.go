package wayback_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigo/cvelookup/internal/httpclient"
	"github.com/vigo/cvelookup/internal/wayback"
)

func newClient(t *testing.T, handler http.HandlerFunc) *wayback.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	hc, err := httpclient.New()
	require.NoError(t, err)

	client, err := wayback.New(hc, wayback.WithEndpoint(ts.URL))
	require.NoError(t, err)

	return client
}

func TestFetchCVE(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://nvd.nist.gov/vuln/detail/CVE-2021-34527", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"archived_snapshots": {"closest": {
			"status": "200", "available": true, "timestamp": "20240101000000",
			"url": "http://web.archive.org/web/20240101000000/https://nvd.nist.gov/vuln/detail/CVE-2021-34527"}}}`))
	})

	got, err := client.FetchCVE(context.Background(), "CVE-2021-34527")
	require.NoError(t, err)
	assert.Equal(t, "http://web.archive.org/web/20240101000000/https://nvd.nist.gov/vuln/detail/CVE-2021-34527", got)
}

func TestFetchNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"archived_snapshots": {}}`))
	})

	_, err := client.FetchCVE(context.Background(), "CVE-0000-0000")
	assert.ErrorIs(t, err, wayback.ErrSnapshotNotFound)
}

func TestFetchBadJSON(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`nope`))
	})

	_, err := client.Fetch(context.Background(), "https://example.com")
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	_, err := wayback.New(nil)
	assert.ErrorIs(t, err, wayback.ErrValueRequired)

	hc, err := httpclient.New()
	require.NoError(t, err)

	_, err = wayback.New(hc, wayback.WithEndpoint(""))
	assert.ErrorIs(t, err, wayback.ErrValueRequired)
}
