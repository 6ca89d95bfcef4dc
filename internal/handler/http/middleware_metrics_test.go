package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h := &Handler{metrics: newHTTPMetrics()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/users/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues(http.MethodDelete, "/users/{id}", "204")))
	assert.Equal(t, 1, testutil.CollectAndCount(h.metrics.requestsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.requestsInFlight))
}

func TestWithMetrics_ImplicitStatus(t *testing.T) {
	h := &Handler{metrics: newHTTPMetrics()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues(http.MethodGet, "/version", "200")))
}

func TestHTTPMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = newHTTPMetrics()
		_ = newHTTPMetrics()
	})
}

func TestHTTPMetrics_Exposition(t *testing.T) {
	h := &Handler{metrics: newHTTPMetrics()}
	h.metrics.requestsTotal.WithLabelValues(http.MethodPost, "/auth/login", "200").Inc()

	rec := httptest.NewRecorder()
	h.metrics.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="POST",path="/auth/login",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
