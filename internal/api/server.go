package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/amalbasheer/Game-analytics/internal/api/handler"
	"github.com/amalbasheer/Game-analytics/internal/config"
	"github.com/amalbasheer/Game-analytics/internal/db"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. The pool may be nil: every data endpoint then serves an empty
// table plus a warning banner, matching the degraded-mode design.
func NewRouter(pool *db.Pool, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Competitions page
		r.Route("/competitions", func(r chi.Router) {
			r.Get("/", h.GetCompetitions)
			r.Get("/by-category", h.GetCompetitionsPerCategory)
			r.Get("/hierarchy", h.GetCompetitionHierarchy)
			r.Get("/filters", h.GetCompetitionFilterOptions)
		})

		// Complexes & venues page
		r.Route("/venues", func(r chi.Router) {
			r.Get("/", h.GetVenues)
			r.Get("/by-complex", h.GetVenuesPerComplex)
			r.Get("/multi-venue-complexes", h.GetMultiVenueComplexes)
			r.Get("/countries", h.GetVenueCountries)
		})

		// Competitor rankings page
		r.Route("/rankings", func(r chi.Router) {
			r.Get("/", h.GetRankings)
			r.Get("/competitor", h.GetCompetitorDetails)
			r.Get("/top", h.GetTopRanked)
			r.Get("/points-leaders", h.GetPointsLeaders)
			r.Get("/by-country", h.GetCountryAnalysis)
			r.Get("/countries", h.GetCompetitorCountries)
		})
	})

	return r
}
