package api

import (
	"context"
	"net/http"

	_ "github.com/blaisecz/wellness-tracker/docs"
	"github.com/blaisecz/wellness-tracker/internal/api/handler"
	"github.com/blaisecz/wellness-tracker/internal/api/middleware"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/metrics"
	"github.com/blaisecz/wellness-tracker/pkg/httputil"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// HealthCheck reports whether a dependency (usually the database) is usable.
type HealthCheck func(ctx context.Context) error

type Router struct {
	userHandler     *handler.UserHandler
	checkInHandler  *handler.CheckInHandler
	wellnessHandler *handler.WellnessHandler
	metrics         *metrics.Metrics
	health          HealthCheck
}

func NewRouter(
	userHandler *handler.UserHandler,
	checkInHandler *handler.CheckInHandler,
	wellnessHandler *handler.WellnessHandler,
	m *metrics.Metrics,
	health HealthCheck,
) *Router {
	return &Router{
		userHandler:     userHandler,
		checkInHandler:  checkInHandler,
		wellnessHandler: wellnessHandler,
		metrics:         m,
		health:          health,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", rt.healthz)

	if rt.metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/check-ins", func(r chi.Router) {
					r.Post("/", rt.checkInHandler.Create)
					r.Get("/", rt.checkInHandler.List)
				})

				r.Route("/wellness", func(r chi.Router) {
					r.Get("/summary", rt.wellnessHandler.GetSummary)
					r.Get("/trends", rt.wellnessHandler.GetTrends)
					r.Get("/insights", rt.wellnessHandler.GetInsights)
					r.Post("/insights/feedback", rt.wellnessHandler.PostFeedback)
				})
			})
		})
	})

	return r
}

func (rt *Router) healthz(w http.ResponseWriter, r *http.Request) {
	if rt.health != nil {
		if err := rt.health(r.Context()); err != nil {
			logging.FromContext(r.Context()).Error("health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
