package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestIPAllowlist_AllowsMatchingIP(t *testing.T) {
	handler := IPAllowlist([]string{"127.0.0.1/32"}, rateLimitTestLogger())(okHandler())

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPAllowlist_DeniesOutsideRange(t *testing.T) {
	handler := IPAllowlist([]string{"127.0.0.1/32"}, rateLimitTestLogger())(okHandler())

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "203.0.113.9:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestIPAllowlist_CIDRRange(t *testing.T) {
	handler := IPAllowlist([]string{"10.0.0.0/8"}, rateLimitTestLogger())(okHandler())

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "10.42.7.1:1000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPAllowlist_InvalidCIDRSkipped(t *testing.T) {
	handler := IPAllowlist([]string{"not-a-cidr", "127.0.0.1/32"}, rateLimitTestLogger())(okHandler())

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterPprof_RoutesBehindAllowlist(t *testing.T) {
	r := chi.NewRouter()
	RegisterPprof(r, []string{"127.0.0.1/32"}, rateLimitTestLogger())

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "203.0.113.9:1"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest("GET", "/debug/pprof/", nil)
	req.RemoteAddr = "127.0.0.1:1"
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
