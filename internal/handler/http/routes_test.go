package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

func TestInit_Version(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestInit_Metrics(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "vault_rate_limited_requests_total")
}

func TestInit_AuthenticatedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/owner/transfer"},
		{http.MethodPost, "/api/owner/accept"},
		{http.MethodPost, "/api/owner/renounce"},
		{http.MethodPut, "/api/fee"},
		{http.MethodGet, "/api/fee/pool"},
		{http.MethodPost, "/api/subscription"},
		{http.MethodGet, "/api/subscription"},
		{http.MethodPost, "/api/records"},
		{http.MethodGet, "/api/records"},
		{http.MethodDelete, "/api/records/0x01"},
		{http.MethodGet, "/api/events"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(t, route.method, route.path, "", nil)
			assertErrorResponse(t, rr, http.StatusUnauthorized, service.KindUnauthorized)

			rr = env.do(t, route.method, route.path, "forged", nil)
			assertErrorResponse(t, rr, http.StatusUnauthorized, service.KindUnauthorized)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/nothing", "", nil)

	assertErrorResponse(t, rr, http.StatusNotFound, service.KindNotFound)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodDelete, "/api/fee", adminToken, nil)

	assertErrorResponse(t, rr, http.StatusNotFound, service.KindNotFound)
}

func TestInit_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", "", nil)

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}
