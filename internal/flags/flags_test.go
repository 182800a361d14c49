// AngelaMos | 2026
// flags_test.go

package flags

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambiatus/gateway/internal/decode"
)

const bootPayload = `{
	"language": "es",
	"accountName": "lucca",
	"endpoints": {
		"eosio": "https://staging.cambiatus.io",
		"api": "https://api.staging.cambiatus.io",
		"graphql": "https://api.staging.cambiatus.io/graph"
	},
	"logo": "/images/logo.png",
	"logoMobile": "/images/logo-mobile.svg",
	"now": 1719792000000,
	"allowCommunityCreation": true,
	"tokenContract": "bes.token",
	"communityContract": "bes.cmm",
	"graphqlSecret": "shh",
	"authToken": null,
	"hasUsedPKAuth": false,
	"canReadClipboard": true,
	"useSubdomain": true,
	"selectedCommunity": "0,BUSS",
	"pinVisibility": false,
	"hasSeenSponsorModal": true
}`

func parsePayload(t *testing.T, raw string) decode.Object {
	t.Helper()
	var obj decode.Object
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestDecode(t *testing.T) {
	f, err := Decode(parsePayload(t, bootPayload))
	require.NoError(t, err)

	assert.Equal(t, "es", f.Language)
	require.NotNil(t, f.AccountName)
	assert.Equal(t, "lucca", *f.AccountName)
	assert.Equal(t, "https://api.staging.cambiatus.io/graph", f.Endpoints.GraphQL)
	assert.Equal(t, time.UnixMilli(1719792000000).UTC(), f.Now)
	assert.True(t, f.AllowCommunityCreation)
	assert.Nil(t, f.AuthToken)
	require.NotNil(t, f.SelectedCommunity)
	assert.Equal(t, "0,BUSS", *f.SelectedCommunity)
	assert.True(t, f.HasSeenSponsorModal)
}

func TestDecodeMissingNow(t *testing.T) {
	obj := parsePayload(t, bootPayload)
	delete(obj, "now")

	_, err := Decode(obj)
	require.Error(t, err)

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "now", decodeErr.Path)
	assert.Equal(t, "required key is missing", decodeErr.Expectation)
}

func TestDecodeNullableKeysMustBePresent(t *testing.T) {
	for _, key := range []string{"accountName", "authToken", "selectedCommunity"} {
		obj := parsePayload(t, bootPayload)
		delete(obj, key)

		_, err := Decode(obj)
		require.Error(t, err, "key %q", key)

		decodeErr, ok := decode.AsError(err)
		require.True(t, ok)
		assert.Equal(t, key, decodeErr.Path)
	}
}

func TestDecodeEndpointsMissingKey(t *testing.T) {
	obj := parsePayload(t, bootPayload)
	endpoints, ok := obj["endpoints"].(map[string]any)
	require.True(t, ok)
	delete(endpoints, "graphql")

	_, err := Decode(obj)
	require.Error(t, err)

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "endpoints.graphql", decodeErr.Path)
}

func TestDecodeWrongType(t *testing.T) {
	obj := parsePayload(t, bootPayload)
	obj["useSubdomain"] = "yes"

	f, err := Decode(obj)
	require.Error(t, err)
	assert.Zero(t, f, "no partial record on failure")

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "useSubdomain", decodeErr.Path)
}

func TestDefaultIsStandalone(t *testing.T) {
	f := Default()

	assert.Equal(t, "en-us", f.Language)
	assert.Nil(t, f.AccountName)
	assert.Equal(t, "bes.token", f.TokenContract)
	assert.Equal(t, "bes.cmm", f.CommunityContract)
	assert.True(t, f.UseSubdomain)
	assert.NotEmpty(t, f.Endpoints.Eosio)
	assert.NotEmpty(t, f.Endpoints.API)
	assert.NotEmpty(t, f.Endpoints.GraphQL)
}

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler().RegisterRoutes(r)
	return r
}

func TestDecodeFlagsEndpoint(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodPost,
		"/session/flags/",
		strings.NewReader(bootPayload),
	)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool  `json:"success"`
		Data    Flags `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "es", body.Data.Language)
}

func TestDecodeFlagsEndpointRejectsMissingKey(t *testing.T) {
	payload := parsePayload(t, bootPayload)
	delete(payload, "now")
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodPost,
		"/session/flags/",
		strings.NewReader(string(raw)),
	)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "now")
}

func TestDefaultEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/session/flags/default", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bes.token")
}
