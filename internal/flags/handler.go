// AngelaMos | 2026
// handler.go

package flags

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/decode"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/session/flags", func(r chi.Router) {
		r.Post("/", h.DecodeFlags)
		r.Get("/default", h.GetDefault)
	})
}

// DecodeFlags validates a raw boot payload and echoes the typed record
// back. Decode failures are reported with the offending field path so
// the client can refuse to boot with a precise reason.
func (h *Handler) DecodeFlags(w http.ResponseWriter, r *http.Request) {
	var obj decode.Object
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	f, err := Decode(obj)
	if err != nil {
		if decodeErr, ok := decode.AsError(err); ok {
			core.JSONError(w, core.UnprocessableError(
				"DECODE_FAILED",
				decodeErr.Error(),
			))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, f)
}

func (h *Handler) GetDefault(w http.ResponseWriter, r *http.Request) {
	core.OK(w, Default())
}
