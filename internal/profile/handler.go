// AngelaMos | 2026
// handler.go

package profile

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/decode"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/{account}/address", h.GetAddress)
	})
}

type addressParams struct {
	Account string `validate:"required,min=1,max=64"`
}

func (h *Handler) GetAddress(w http.ResponseWriter, r *http.Request) {
	params := addressParams{Account: chi.URLParam(r, "account")}

	if err := h.validator.Struct(params); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	addr, err := h.service.LoadAddress(r.Context(), params.Account)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "address")
			return
		}
		if decodeErr, ok := decode.AsError(err); ok {
			core.JSONError(w, core.UnprocessableError(
				"DECODE_FAILED",
				decodeErr.Error(),
			))
			return
		}
		if errors.Is(err, core.ErrUpstream) {
			core.BadGateway(w, "profile upstream unavailable")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, addr)
}
