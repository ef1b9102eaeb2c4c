package contact

import (
	"encoding/json"
	"net/http"

	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

// Handler handles HTTP requests for the contact form.
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

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromRequest(r, h.fallback)

	var req SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode contact request", "error", err)
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyInvalidPayload)
		return
	}

	if _, err := h.svc.Submit(r.Context(), req); err != nil {
		h.tr.Error(w, r, lang, err, locale.KeyContactFailed)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]bool{"success": true})
}
