// AngelaMos | 2026
// handler.go

package environment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cambiatus/gateway/internal/core"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/site/environment", h.GetEnvironment)
}

type environmentResponse struct {
	Host            string `json:"host"`
	Environment     string `json:"environment"`
	CommunityDomain string `json:"community_domain"`
}

// GetEnvironment resolves the deployment environment and community
// domain for a host. Resolution is fail-open: every host, however
// malformed, produces a 200 with a best-effort answer.
func (h *Handler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")
	if host == "" {
		host = r.Header.Get("X-Forwarded-Host")
	}
	if host == "" {
		host = r.Host
	}

	core.OK(w, environmentResponse{
		Host:            host,
		Environment:     Resolve(host).String(),
		CommunityDomain: CommunityDomain(host),
	})
}
