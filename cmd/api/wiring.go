package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lemerle/medassist/internal/api/router"
	"github.com/lemerle/medassist/internal/appointments"
	"github.com/lemerle/medassist/internal/chat"
	appconfig "github.com/lemerle/medassist/internal/config"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/content"
	httpmiddleware "github.com/lemerle/medassist/internal/http/middleware"
	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/notify"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/internal/reviews"
	"github.com/lemerle/medassist/pkg/logging"
)

// deps are the process-level resources the HTTP surface is built from.
type deps struct {
	Logger   *logging.Logger
	Catalog  *locale.Catalog
	Metrics  *metrics.SiteMetrics
	Location *time.Location

	Appointments appointments.Repository
	Contact      contact.Repository
	Reviews      reviews.Repository
	Content      content.Repository // optional
	Cache        content.Cache      // optional
	Chat         chat.Client        // optional
	Email        notify.EmailSender

	DB          router.Pinger
	RateLimiter *httpmiddleware.RateLimiter
	MetricsPage http.Handler
}

func setupMetrics() (http.Handler, *metrics.SiteMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	siteMetrics := metrics.NewSiteMetrics(registry)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), siteMetrics
}

func buildHandler(cfg *appconfig.Config, d deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logging.Default()
	}
	catalog := d.Catalog
	if catalog == nil {
		catalog = locale.Default()
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	fallback, err := locale.Parse(cfg.DefaultLocale)
	if err != nil {
		logger.Warn("unsupported DEFAULT_LOCALE; using french", "locale", cfg.DefaultLocale)
		fallback = locale.French
	}

	email := d.Email
	if email == nil {
		email = notify.NewStubEmailSender(logger)
	}

	tr := respond.NewTranslator(catalog, logger)
	notifier := notify.NewService(email, catalog, notify.Config{
		BusinessName: cfg.BusinessName,
		InboxEmail:   cfg.ContactInboxEmail,
	}, logger)

	apptSvc := appointments.NewService(d.Appointments, appointments.NewSchedule(loc),
		appointments.WithNotifier(notifier),
		appointments.WithMetrics(d.Metrics),
		appointments.WithLogger(logger),
		appointments.WithSlotInterval(cfg.SlotInterval),
	)
	contactSvc := contact.NewService(d.Contact, notifier, d.Metrics, logger)
	chatSvc := chat.NewService(d.Chat, chat.Config{
		Provider:     cfg.LLMProvider,
		Model:        chatModel(cfg),
		BusinessName: cfg.BusinessName,
		MaxTokens:    int32(cfg.ChatMaxTokens),
		HistoryLimit: cfg.ChatHistoryLimit,
	}, catalog, d.Metrics, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		Appointments:       appointments.NewHandler(apptSvc, tr, fallback, logger),
		Contact:            contact.NewHandler(contactSvc, tr, fallback, logger),
		Reviews:            reviews.NewHandler(d.Reviews, tr, fallback, d.Metrics, logger),
		Chat:               chat.NewHandler(chatSvc, tr, fallback, logger),
		MetricsHandler:     d.MetricsPage,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        d.RateLimiter,
		DB:                 d.DB,
	}
	if d.Content != nil {
		pages := content.NewPages(d.Content, content.PagesConfig{
			Cache:   d.Cache,
			TTL:     cfg.ContentCacheTTL,
			Catalog: catalog,
			Metrics: d.Metrics,
			Logger:  logger,
		})
		routerCfg.Content = content.NewHandler(pages, tr, logger)
	}
	return router.New(routerCfg)
}

func chatModel(cfg *appconfig.Config) string {
	if cfg.LLMProvider == "gemini" {
		return cfg.GeminiModelID
	}
	return cfg.BedrockModelID
}
