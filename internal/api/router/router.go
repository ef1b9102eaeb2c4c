package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lemerle/medassist/internal/appointments"
	"github.com/lemerle/medassist/internal/chat"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/content"
	httpmiddleware "github.com/lemerle/medassist/internal/http/middleware"
	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/reviews"
	"github.com/lemerle/medassist/pkg/logging"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Appointments       *appointments.Handler
	Content            *content.Handler
	Contact            *contact.Handler
	Reviews            *reviews.Handler
	Chat               *chat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Optional: applied to form and chat submissions only.
	RateLimiter *httpmiddleware.RateLimiter

	// Optional: /ready answers 503 when the ping fails.
	DB Pinger
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", health)
	r.Get("/ready", ready(cfg.DB))
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		// Writes are throttled per client IP.
		submit := api
		if cfg.RateLimiter != nil {
			submit = api.With(httpmiddleware.Limit(cfg.RateLimiter))
		}

		if cfg.Content != nil {
			api.Get("/services", cfg.Content.Services)
			api.Get("/appointment-services", cfg.Content.AppointmentServices)
			api.Get("/team-members", cfg.Content.Team)
			api.Get("/pricing", cfg.Content.Pricing)
			api.Get("/equipment", cfg.Content.Equipment)
			api.Get("/partners", cfg.Content.Partners)
			api.Get("/blog-posts", cfg.Content.BlogPosts)
			api.Get("/testimonials", cfg.Content.Testimonials)
		}
		if cfg.Appointments != nil {
			api.Get("/appointments", cfg.Appointments.ListServices)
			api.Get("/appointments/availability", cfg.Appointments.Availability)
			submit.Post("/appointments", cfg.Appointments.Book)
		}
		if cfg.Contact != nil {
			submit.Post("/contact", cfg.Contact.Submit)
		}
		if cfg.Reviews != nil {
			submit.Post("/ReviewForm", cfg.Reviews.Submit)
			submit.Post("/testimonials", cfg.Reviews.Submit)
		}
		if cfg.Chat != nil {
			submit.Post("/chat", cfg.Chat.Chat)
		}
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func ready(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
