package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdova/medicova-store-sub004/pkg/health"
)

func setupFullRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(testService(), health.NewHandler(), testLogger(), RouterConfig{
		PprofCIDRs: []string{"127.0.0.1/32"},
	})
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := setupFullRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := setupFullRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestRouter_CartRequiresAuth(t *testing.T) {
	router := setupFullRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CartEndToEnd(t *testing.T) {
	router := setupFullRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-1",
		addItemBody("p1", 10, 2))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/cart", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeCart(t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 20.0, cart.TotalPrice)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := setupFullRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PprofRestricted(t *testing.T) {
	router := setupFullRouter(t)

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "203.0.113.9:1"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
