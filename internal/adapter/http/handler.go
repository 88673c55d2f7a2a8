package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"adserve/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the AdUseCase to execute
// business logic, a logger for structured logging and the public base URL
// embedded into tracking and script URLs. Routes are registered on a
// chi.Router.
type Handler struct {
	svc     port.AdUseCase
	logger  *slog.Logger
	baseURL string
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The serving
// endpoints run inside third-party pages, so they sit at the root rather
// than under an API prefix; reporting lives under /stats and /publishers.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, baseURL string) *Handler {
	h := &Handler{svc: svc, logger: logger, baseURL: strings.TrimRight(baseURL, "/")}
	r := chi.NewRouter()

	r.Get("/publisher.js", h.handlePublisherScript)
	r.Get("/ad/render", h.handleAdRender)
	r.Get("/track/impression", h.handleImpressionPixel)
	r.Get("/track/click", h.handleAdClick)

	// legacy surface kept for publishers that never migrated
	r.Get("/ads/serve", h.handleLegacyServe)
	r.Get("/ads/click", h.handleLegacyClick)

	r.Get("/publishers/earnings", h.handlePublisherEarnings)
	r.Get("/stats/overview", h.handleStatsOverview)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// absURL resolves a relative tracking path against the public base URL.
func (h *Handler) absURL(path string) string {
	return h.baseURL + path
}
