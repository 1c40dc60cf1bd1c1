package mwmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	router := chi.NewRouter()
	router.Use(New(m))
	router.Get("/tickets/{registrationId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/get-events", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	for _, path := range []string{"/tickets/REG-1", "/tickets/REG-2", "/get-events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/tickets/{registrationId}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/get-events", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}
