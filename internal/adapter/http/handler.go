package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"campaign-vault/internal/core/port"
)

// CallerHeader carries the identity of the principal issuing a request.
// Authentication happens in front of this service.
const CallerHeader = "X-Caller"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a VaultUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.VaultUseCase
	logger   *slog.Logger
	router   chi.Router
	validate *validator.Validate
}

// Option mounts optional endpoints.
type Option func(r chi.Router)

// WithMetrics serves metrics at path.
func WithMetrics(path string, metrics http.Handler) Option {
	return func(r chi.Router) { r.Method(http.MethodGet, path, metrics) }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.VaultUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: validator.New(validator.WithRequiredStructEnabled())}
	r := chi.NewRouter()

	r.Route("/api/v1/campaign", func(r chi.Router) {
		r.Get("/", h.handleStatus)
		r.Get("/events", h.handleEvents)
		r.Get("/holders/{holder}", h.handleHolding)
		r.Get("/preview-withdraw", h.handlePreviewWithdraw)
		r.Post("/deposits", h.handleDeposit)
		r.Post("/settle", h.handleSettle)
		r.Post("/refunds", h.handleRefund)
		r.Post("/expiration", h.handleExpiration)
	})
	for _, opt := range opts {
		opt(r)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
