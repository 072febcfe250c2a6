// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/middleware"
)

// RequestIDHeaderName is echoed on every response.
const RequestIDHeaderName = middleware.RequestIDHeader

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires the handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates the router. cfg may be nil for defaults; perfMon may be
// nil to skip latency sampling.
func NewRouter(handler *Handler, cfg *config.ServerConfig, perfMon *middleware.PerformanceMonitor) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromServer(cfg)),
		perfMon:       perfMon,
	}
}

// Handler builds the route tree.
//
//	GET    /metrics
//	GET    /api/v1/health
//	GET    /api/v1/health/performance
//	GET    /api/v1/recipes
//	POST   /api/v1/recipes
//	GET    /api/v1/recipes/{id}
//	PUT    /api/v1/recipes/{id}
//	DELETE /api/v1/recipes/{id}
//	POST   /api/v1/recipes/{id}/usage
//	GET    /api/v1/recipes/{id}/similar
//	GET    /api/v1/recipes/{id}/duplicates
//	GET    /api/v1/recipes/{id}/terms
//	POST   /api/v1/packs/suggestions
//	GET    /api/v1/packs/themes
//	GET    /api/v1/packs/themes/{theme}
func (router *Router) Handler() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(compressionLevel))

		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", h.Health)
			r.Get("/performance", h.HealthPerformance)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", h.ListRecipes)
				r.Post("/", h.CreateRecipe)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetRecipe)
					r.Put("/", h.UpdateRecipe)
					r.Delete("/", h.DeleteRecipe)
					r.Post("/usage", h.RecordUsage)
					r.Get("/similar", h.SimilarRecipes)
					r.Get("/duplicates", h.Duplicates)
					r.Get("/terms", h.Terms)
				})
			})

			r.Route("/packs", func(r chi.Router) {
				r.Post("/suggestions", h.PackSuggestions)
				r.Get("/themes", h.ListThemes)
				r.Get("/themes/{theme}", h.ThemedPack)
			})
		})
	})

	return r
}
