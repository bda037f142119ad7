package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the vault API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/owner", h.getOwnership)
		r.Get("/api/fee", h.getFee)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withRateLimit)

		r.Post("/api/owner/transfer", h.requestOwnershipTransfer)
		r.Post("/api/owner/accept", h.acceptOwnership)
		r.Post("/api/owner/renounce", h.renounceOwnership)

		r.Put("/api/fee", h.changeFee)
		r.Get("/api/fee/pool", h.getFeePool)

		r.Post("/api/subscription", h.subscribe)
		r.Get("/api/subscription", h.getSubscription)

		r.Post("/api/records", h.storeOrUpdate)
		r.Get("/api/records", h.getStoredPasswords)
		r.Delete("/api/records/{id}", h.removeData)

		r.Get("/api/events", h.getEvents)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
