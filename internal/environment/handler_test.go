// AngelaMos | 2026
// handler_test.go

package environment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doResolve(t *testing.T, target string, mutate func(*http.Request)) environmentResponse {
	t.Helper()

	r := chi.NewRouter()
	NewHandler().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data environmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestGetEnvironmentFromQuery(t *testing.T) {
	resp := doResolve(t, "/site/environment?host=verde.cambiatus.io", nil)

	assert.Equal(t, "production", resp.Environment)
	assert.Equal(t, "verde.cambiatus.io", resp.CommunityDomain)
}

func TestGetEnvironmentFromForwardedHost(t *testing.T) {
	resp := doResolve(t, "/site/environment", func(req *http.Request) {
		req.Header.Set("X-Forwarded-Host", "verde.staging.cambiatus.io")
	})

	assert.Equal(t, "staging", resp.Environment)
	assert.Equal(t, "verde.staging.cambiatus.io", resp.CommunityDomain)
}

func TestGetEnvironmentNeverFails(t *testing.T) {
	resp := doResolve(t, "/site/environment?host=%2E%2E%2E", nil)

	assert.NotEmpty(t, resp.Environment)
	assert.NotEmpty(t, resp.CommunityDomain)
}
