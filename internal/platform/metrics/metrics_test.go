package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveOperation(t *testing.T) {
	c := metrics.NewCollector(nil)

	c.ObserveOperation("charge", 5*time.Millisecond, nil)
	c.ObserveOperation("charge", 5*time.Millisecond, nil)
	c.ObserveOperation("payment", time.Millisecond, errors.New("not enough money"))

	count, err := testutil.GatherAndCount(c.Registry(), "ledger_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per operation/outcome pair")

	count, err = testutil.GatherAndCount(c.Registry(), "ledger_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector(nil)
	c.RateSet("EUR")
	c.ObserveHTTPRequest("GET", "/api/v1/me", "2xx")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `exchange_rates_set_total{currency="EUR"} 1`)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector

	assert.NotPanics(t, func() {
		c.ObserveOperation("charge", time.Second, nil)
		c.RateSet("EUR")
		c.ObserveHTTPRequest("GET", "/", "2xx")
	})
	assert.Nil(t, c.Registry())

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
