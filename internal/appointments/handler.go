package appointments

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

const maxBodyBytes = 64 << 10

// Handler serves the booking form endpoints.
type Handler struct {
	svc      *Service
	tr       *respond.Translator
	fallback locale.Locale
	logger   *logging.Logger
}

func NewHandler(svc *Service, tr *respond.Translator, fallback locale.Locale, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, tr: tr, fallback: fallback, logger: logger}
}

// BookResponse is returned on a successful booking.
type BookResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Book handles POST /api/appointments.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromRequest(r, h.fallback)

	var req BookRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode booking", "error", err)
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyInvalidPayload)
		return
	}

	appt, err := h.svc.Book(r.Context(), req, lang)
	if err != nil {
		h.tr.Error(w, r, lang, err, locale.KeyBookingFailed)
		return
	}

	respond.JSON(w, http.StatusCreated, BookResponse{
		Message: h.tr.Catalog().Text(lang, locale.KeyBookingSuccess),
		ID:      appt.ID,
	})
}

// ListServices handles GET /api/appointments.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	options, err := h.svc.ServiceOptions(r.Context())
	if err != nil {
		h.tr.Error(w, r, locale.FromRequest(r, h.fallback), err, locale.KeyServerError)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"services": options})
}

// AvailabilityResponse lists the open slots of one day.
type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Availability handles GET /api/appointments/availability?date=YYYY-MM-DD.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromRequest(r, h.fallback)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyInvalidDateTime)
		return
	}

	slots, err := h.svc.Availability(r.Context(), date)
	if err != nil {
		h.tr.Error(w, r, lang, err, locale.KeyServerError)
		return
	}
	respond.JSON(w, http.StatusOK, AvailabilityResponse{Date: date, Slots: slots})
}
