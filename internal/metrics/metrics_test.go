package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestFinished(t *testing.T) {
	m := New()

	m.RequestStarted()
	m.RequestStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.inFlight))

	m.RequestFinished(http.MethodGet, "/api/items/:userId", http.StatusOK, 10*time.Millisecond)
	m.RequestFinished(http.MethodGet, "/api/items/:userId", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/items/:userId", "200")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RequestStarted()
	m.RequestFinished(http.MethodPost, "/api/items", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gudang_http_requests_total{method="POST",route="/api/items",status="201"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
