package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_admin_pro/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := middleware.NewHTTPMetrics(reg, "test")
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/clients/1", nil),
		httptest.NewRequest(http.MethodGet, "/clients/2", nil),
		httptest.NewRequest(http.MethodPost, "/clients", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// ID ごとではなくルートパターンで集計される
	expected := `
# HELP test_http_requests_total Total number of HTTP requests.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/clients/{id}",status="200"} 2
test_http_requests_total{method="POST",route="/clients",status="201"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))

	count, err := testutil.GatherAndCount(reg, "test_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewHTTPMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := middleware.NewHTTPMetrics(reg, "dup")
	require.NoError(t, err)

	_, err = middleware.NewHTTPMetrics(reg, "dup")
	assert.Error(t, err)
}
