package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lemerle/medassist/internal/appointments"
	appconfig "github.com/lemerle/medassist/internal/config"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/reviews"
	"github.com/lemerle/medassist/pkg/logging"
)

func TestSetupMetricsExposesSiteMetrics(t *testing.T) {
	handler, siteMetrics := setupMetrics()
	if handler == nil || siteMetrics == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	siteMetrics.ObserveBooking("booked")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "medassist_appointments_bookings_total") {
		t.Fatalf("expected bookings counter to be exported")
	}
}

func testDeps() deps {
	metricsHandler, siteMetrics := setupMetrics()
	return deps{
		Logger:       logging.New("error"),
		Metrics:      siteMetrics,
		Location:     time.UTC,
		Appointments: appointments.NewInMemoryRepository(appointments.ServiceOption{ID: 1, TitleFR: "Soins", TitleEN: "Care", TitleAR: "رعاية"}),
		Contact:      contact.NewInMemoryRepository(),
		Reviews:      reviews.NewInMemoryRepository(),
		MetricsPage:  metricsHandler,
	}
}

func TestBuildHandlerWiresRoutes(t *testing.T) {
	cfg := &appconfig.Config{DefaultLocale: "fr", SlotInterval: 30 * time.Minute, LLMProvider: "bedrock"}
	handler := buildHandler(cfg, testDeps())

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/appointments", "", http.StatusOK},
		{http.MethodPost, "/api/contact", `{"name":"Amine","email":"amine@example.com","message":"Bonjour"}`, http.StatusCreated},
		{http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"Salut"}]}`, http.StatusServiceUnavailable},
		// Content routes are only mounted with a content repository.
		{http.MethodGet, "/api/services", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, rr.Code)
		}
	}
}

func TestBuildHandlerUnsupportedDefaultLocale(t *testing.T) {
	cfg := &appconfig.Config{DefaultLocale: "de"}
	handler := buildHandler(cfg, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "contact_missing_fields") {
		t.Fatalf("expected error code in body, got %s", rr.Body.String())
	}
}
