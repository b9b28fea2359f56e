package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"leetcode_proxy/internal/api/handler"
	"leetcode_proxy/internal/api/middleware"
	"leetcode_proxy/internal/common"
)

// NewRouter wires every route. metricsHandler may be nil to leave /metrics unmounted.
func NewRouter(
	profileService handler.ProfileFetcher,
	diagnosticService handler.Prober,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	systemHandler := handler.NewSystemHandler(diagnosticService)
	systemHandler.RegisterRoutes(r)

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	profileHandler := handler.NewProfileHandler(profileService)
	r.Route("/api", func(api chi.Router) {
		systemHandler.RegisterAPIRoutes(api)
		profileHandler.RegisterRoutes(api)
	})

	return r
}
