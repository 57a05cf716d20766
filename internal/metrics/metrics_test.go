package metrics

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporterServesObservations(t *testing.T) {
	e := NewExporter()
	e.ObserveRequest("/api/biens", http.MethodGet, 200, 42*time.Millisecond)
	e.ObserveRequest("/api/biens", http.MethodGet, 200, 17*time.Millisecond)
	e.ObserveRequest("/api/auth/verify", http.MethodGet, 401, 5*time.Millisecond)

	require.NoError(t, e.Start("127.0.0.1:0"))
	defer func() { _ = e.Stop(context.Background()) }()

	resp, err := http.Get("http://" + e.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body),
		`gestloyer_api_requests_total{endpoint="/api/biens",method="GET",status="200"} 2`)
	assert.Contains(t, string(body), `gestloyer_auth_failures_total 1`)
}

func TestExporterDoubleStart(t *testing.T) {
	e := NewExporter()
	require.NoError(t, e.Start("127.0.0.1:0"))
	defer func() { _ = e.Stop(context.Background()) }()

	assert.Error(t, e.Start("127.0.0.1:0"))
}
