package reviews

import (
	"encoding/json"
	"net/http"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/pkg/logging"
)

// Handler serves the review form.
type Handler struct {
	repo     Repository
	tr       *respond.Translator
	fallback locale.Locale
	metrics  *metrics.SiteMetrics
	logger   *logging.Logger
}

func NewHandler(repo Repository, tr *respond.Translator, fallback locale.Locale, m *metrics.SiteMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, tr: tr, fallback: fallback, metrics: m, logger: logger}
}

// Submit handles POST /api/ReviewForm and POST /api/testimonials.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromRequest(r, h.fallback)

	var req SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode review", "error", err)
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyInvalidPayload)
		return
	}
	if err := req.Validate(); err != nil {
		h.metrics.ObserveSubmission("review", "invalid")
		h.tr.Error(w, r, lang, err, locale.KeyReviewFailed)
		return
	}

	review, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.metrics.ObserveSubmission("review", "error")
		h.tr.Error(w, r, lang, apperr.Store("create review", locale.KeyReviewFailed, err), locale.KeyReviewFailed)
		return
	}
	h.metrics.ObserveSubmission("review", "stored")
	h.logger.Info("review stored", "id", review.ID, "star", review.Star)

	respond.JSON(w, http.StatusCreated, map[string]bool{"success": true})
}
