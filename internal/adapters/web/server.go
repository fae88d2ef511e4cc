package web

import (
	"context"
	"net/http"
	"time"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
)

type ServerConfig struct {
	Port           string
	PublicDir      string
	AllowedOrigins []string
	// RateLimit is the per-IP request budget per minute for /api/v1.
	RateLimit int
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig,
	pageHandler *PageHandler,
	apiHandler *APIHandler,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(middleware.Compress(5, "text/html", "text/css", "application/json", "image/svg+xml"))

	r.NotFound(pageHandler.NotFound)

	publicFS := http.StripPrefix("/public/", http.FileServer(http.Dir(cfg.PublicDir)))
	r.Handle("/public/*", publicFS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Get("/", pageHandler.Listing)
	r.Get("/properties", pageHandler.Listing)
	r.Get("/properties-detail", pageHandler.DefaultDetail)
	r.Get("/properties/{propertyID}", pageHandler.Detail)

	r.Route("/partials", func(r chi.Router) {
		r.Get("/listing", pageHandler.ListingPartial)
		r.Get("/filters/{section}", pageHandler.FilterSectionPartial)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", constants.HeaderXTraceID},
			ExposedHeaders:   []string{constants.HeaderXTraceID},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
		}
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/properties", apiHandler.ListProperties)
		r.Get("/properties/{propertyID}", apiHandler.GetProperty)

		r.Post("/recommendations/suggest", apiHandler.Suggest)
		r.Get("/recommendations/similar/{propertyID}", apiHandler.Similar)

		r.Post("/analytics/predict-price", apiHandler.PredictPrice)
		r.Get("/analytics/location/{location}", apiHandler.AnalyzeLocation)
		r.Get("/analytics/price-forecast", apiHandler.ForecastPrice)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server...", nil)
	return s.httpServer.Shutdown(ctx)
}
