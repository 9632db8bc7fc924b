// Package api wires handlers, middleware and services into the HTTP router.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/netra/gallery/internal/handlers"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
	"github.com/netra/gallery/internal/services"
)

// Deps are the collaborators the router needs
type Deps struct {
	Store   *repository.Store
	Gallery *services.GalleryService
	Contact *services.ContactService
	Hub     *services.WebSocketHub
	Logger  *observability.Logger

	ServiceName    string
	MetricsEnabled bool
}

// NewRouter builds the gallery HTTP router
func NewRouter(d Deps) chi.Router {
	logger := d.Logger
	if logger == nil {
		logger = observability.GetLogger()
	}
	serviceName := d.ServiceName
	if serviceName == "" {
		serviceName = "netra-gallery"
	}

	photographerHandler := handlers.NewPhotographerHandler(d.Gallery)
	categoryHandler := handlers.NewCategoryHandler(d.Gallery)
	photoHandler := handlers.NewPhotoHandler(d.Gallery)
	exhibitionHandler := handlers.NewExhibitionHandler(d.Gallery)
	eventHandler := handlers.NewEventHandler(d.Gallery)
	var pinger handlers.Pinger
	if d.Store != nil {
		pinger = d.Store
	}
	healthHandler := handlers.NewHealthHandler(pinger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogging(logger))
	r.Use(middleware.Recoverer)
	r.Use(observability.TracingMiddleware(serviceName))
	if d.MetricsEnabled {
		r.Use(metrics.HTTPMiddleware)
	}

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/api/health", healthHandler.HealthCheck)
	r.Get("/api/version", handlers.VersionHandler)

	if d.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	if d.Hub != nil {
		r.Get("/ws", handlers.NewWebSocketHandler(d.Hub).HandleConnection)
	}

	r.Route("/api/photographers", func(r chi.Router) {
		r.Get("/", photographerHandler.List)
		r.Post("/", photographerHandler.Create)
		r.Get("/featured", photographerHandler.ListFeatured)
		r.Get("/{id}", photographerHandler.Get)
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
		r.Get("/{id}", categoryHandler.Get)
	})

	r.Route("/api/photos", func(r chi.Router) {
		r.Get("/", photoHandler.List)
		r.Post("/", photoHandler.Create)
		r.Get("/featured", photoHandler.ListFeatured)
		r.Get("/photographer/{id}", photoHandler.ListByPhotographer)
		r.Get("/category/{id}", photoHandler.ListByCategory)
		r.Get("/{id}", photoHandler.Get)
	})

	r.Route("/api/exhibitions", func(r chi.Router) {
		r.Get("/", exhibitionHandler.List)
		r.Post("/", exhibitionHandler.Create)
		r.Get("/current", exhibitionHandler.Current)
		r.Get("/{id}", exhibitionHandler.Get)
	})

	r.Route("/api/events", func(r chi.Router) {
		r.Post("/", eventHandler.Create)
		r.Get("/exhibition/{id}", eventHandler.ListByExhibition)
		r.Get("/{id}", eventHandler.Get)
	})

	if d.Contact != nil {
		r.Post("/api/contact", handlers.NewContactHandler(d.Contact).Submit)
	}

	return r
}

// Route is one method and pattern served by a router
type Route struct {
	Method  string
	Pattern string
}

// Routes lists every route of r sorted by pattern, then method
func Routes(r chi.Routes) ([]Route, error) {
	var out []Route
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		out = append(out, Route{Method: method, Pattern: route})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out, nil
}
