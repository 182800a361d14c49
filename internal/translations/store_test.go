// AngelaMos | 2026
// store_test.go

package translations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambiatus/gateway/internal/config"
	"github.com/cambiatus/gateway/internal/locale"
)

var fixtureTables = map[string]map[string]string{
	"en-US.json": {
		"decimal_separator":   ".",
		"thousands_separator": ",",
		"menu.profile":        "Profile",
	},
	"pt-BR.json": {
		"decimal_separator":   ",",
		"thousands_separator": ".",
	},
	"es-ES.json": {
		"decimal_separator":   ",",
		"thousands_separator": ".",
	},
	"cat-CAT.json": {
		"decimal_separator":   ",",
		"thousands_separator": ".",
	},
	"amh-ETH.json": {
		"menu.profile": "መገለጫ",
	},
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	for file, table := range fixtureTables {
		data, err := json.Marshal(table)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), data, 0o600))
	}

	store, err := NewStore(config.TranslationsConfig{
		Dir:     dir,
		Version: "1.2.3",
	}, nil)
	require.NoError(t, err)
	return store
}

func TestNewStoreMissingBundle(t *testing.T) {
	_, err := NewStore(config.TranslationsConfig{Dir: t.TempDir()}, nil)
	require.Error(t, err)
}

func TestSeparators(t *testing.T) {
	store := newTestStore(t)

	en := store.Separators(locale.English)
	assert.Equal(t, ".", en.Decimal)
	assert.Equal(t, ",", en.Thousands)

	pt := store.Separators(locale.Portuguese)
	assert.Equal(t, ",", pt.Decimal)
	assert.Equal(t, ".", pt.Thousands)
}

func TestSeparatorsFallBackWhenKeysMissing(t *testing.T) {
	store := newTestStore(t)

	// the Amharic table has no separator keys
	am := store.Separators(locale.Amharic)
	assert.NotEmpty(t, am.Decimal)
	assert.NotEmpty(t, am.Thousands)
}

func TestAssetKnownFile(t *testing.T) {
	store := newTestStore(t)

	data, err := store.Asset(context.Background(), "es-ES.json", "1.2.3")
	require.NoError(t, err)

	var table map[string]string
	require.NoError(t, json.Unmarshal(data, &table))
	assert.Equal(t, ",", table["decimal_separator"])
}

func TestAssetUnknownFileIsRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Asset(context.Background(), "../config.yaml", "1.2.3")
	require.Error(t, err)

	_, err = store.Asset(context.Background(), "fr-FR.json", "1.2.3")
	require.Error(t, err)
}

func TestLanguages(t *testing.T) {
	store := newTestStore(t)

	langs := store.Languages()
	require.Len(t, langs, 5)
	assert.Equal(t, "en-us", langs[0].Code)
	assert.True(t, langs[0].Default)
	assert.Equal(t, "/translations/en-US.json?version=1.2.3", langs[0].Asset)
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	handler := NewHandler(newTestStore(t))
	r := chi.NewRouter()
	handler.RegisterAssetRoutes(r)
	r.Route("/v1", handler.RegisterRoutes)
	return r
}

func TestGetAssetEndpoint(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodGet,
		"/translations/pt-BR.json?version=1.2.3",
		nil,
	)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
}

func TestGetAssetEndpointUnknownFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/translations/fr-FR.json", nil)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAssetEndpointBadVersion(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodGet,
		"/translations/en-US.json?version=not-semver",
		nil,
	)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSeparatorsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/locale/es-es/separators", nil)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data Separators `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ",", body.Data.Decimal)
}

func TestGetSeparatorsEndpointUnknownLocale(t *testing.T) {
	// "es" is a language code, not a locale
	req := httptest.NewRequest(http.MethodGet, "/v1/locale/es/separators", nil)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListLanguagesEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/locale/languages", nil)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pt-br")
}
