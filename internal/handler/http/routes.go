package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DepthRoute is the path the capture client uploads batches to.
const DepthRoute = "/api/depth"

// HealthRoute answers liveness probes.
const HealthRoute = "/api/health"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(HealthRoute, h.health)
	router.Post(DepthRoute, h.estimateDepth)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
