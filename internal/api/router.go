package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/better-rest/docs"
	"github.com/blaisecz/better-rest/internal/api/handler"
	"github.com/blaisecz/better-rest/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	bedtimeHandler *handler.BedtimeHandler
	formHandler    *handler.FormHandler
}

func NewRouter(bedtimeHandler *handler.BedtimeHandler, formHandler *handler.FormHandler) *Router {
	return &Router{
		bedtimeHandler: bedtimeHandler,
		formHandler:    formHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(chimiddleware.Logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/bedtime", func(r chi.Router) {
			r.Post("/estimate", rt.bedtimeHandler.Estimate)
			r.Post("/feedback", rt.bedtimeHandler.Feedback)
		})

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", rt.formHandler.Create)
			r.Get("/", rt.formHandler.List)
			r.Get("/{formId}", rt.formHandler.GetByID)
			r.Patch("/{formId}", rt.formHandler.Update)
		})
	})

	return r
}
