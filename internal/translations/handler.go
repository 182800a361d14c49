// AngelaMos | 2026
// handler.go

package translations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/locale"
)

type Handler struct {
	store     *Store
	validator *validator.Validate
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterAssetRoutes mounts the raw asset passthrough. It lives at
// the root, outside /v1, because the web client requests the bundle by
// the exact path baked into its build.
func (h *Handler) RegisterAssetRoutes(r chi.Router) {
	r.Get("/translations/{file}", h.GetAsset)
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/locale", func(r chi.Router) {
		r.Get("/languages", h.ListLanguages)
		r.Get("/{locale}/separators", h.GetSeparators)
	})
}

type assetParams struct {
	File    string `validate:"required,max=32"`
	Version string `validate:"omitempty,semver"`
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	params := assetParams{
		File:    chi.URLParam(r, "file"),
		Version: r.URL.Query().Get("version"),
	}

	if err := h.validator.Struct(params); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	data, err := h.store.Asset(r.Context(), params.File, params.Version)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "translation asset")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if params.Version != "" {
		// versioned asset URLs never change content
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response write
	_, _ = w.Write(data)
}

func (h *Handler) GetSeparators(w http.ResponseWriter, r *http.Request) {
	lang, ok := locale.FromLocale(chi.URLParam(r, "locale"))
	if !ok {
		core.NotFound(w, "locale")
		return
	}

	core.OK(w, h.store.Separators(lang))
}

func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.store.Languages())
}
