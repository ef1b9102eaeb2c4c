package content

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

// Handler serves the read-only content endpoints.
type Handler struct {
	pages  *Pages
	tr     *respond.Translator
	logger *logging.Logger
}

func NewHandler(pages *Pages, tr *respond.Translator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{pages: pages, tr: tr, logger: logger}
}

// lang resolves ?lang= strictly and writes the 400 itself on failure.
func (h *Handler) lang(w http.ResponseWriter, r *http.Request, fallback locale.Locale) (locale.Locale, bool) {
	l, err := locale.FromQuery(r, fallback)
	if err != nil {
		h.tr.Message(w, http.StatusBadRequest, fallback, locale.KeyInvalidLanguage)
		return "", false
	}
	return l, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, l locale.Locale, resource string, err error) {
	h.tr.Error(w, r, l, apperr.Store("load "+resource, locale.KeyServerError, err), locale.KeyServerError)
}

// Services handles GET /api/services.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}
	page, err := h.pages.Services(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "services", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

// AppointmentServices handles GET /api/appointment-services.
func (h *Handler) AppointmentServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.pages.AppointmentServices(r.Context())
	if err != nil {
		h.fail(w, r, locale.FromRequest(r, locale.French), "appointment services", err)
		return
	}
	respond.JSON(w, http.StatusOK, services)
}

// Team handles GET /api/team-members.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}
	page, err := h.pages.Team(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "team members", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

// Pricing handles GET /api/pricing. French is the default here.
func (h *Handler) Pricing(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.French)
	if !ok {
		return
	}
	page, err := h.pages.Pricing(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "pricing", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

// Equipment handles GET /api/equipment.
func (h *Handler) Equipment(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}
	page, err := h.pages.Equipment(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "equipment", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

// Partners handles GET /api/partners.
func (h *Handler) Partners(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}
	partners, err := h.pages.Partners(r.Context())
	if err != nil {
		h.fail(w, r, l, "partners", err)
		return
	}
	respond.JSON(w, http.StatusOK, partners)
}

// BlogPosts handles GET /api/blog-posts with an optional ?id=.
func (h *Handler) BlogPosts(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}

	rawID := strings.TrimSpace(r.URL.Query().Get("id"))
	if rawID == "" {
		posts, err := h.pages.BlogPosts(r.Context(), l)
		if err != nil {
			h.fail(w, r, l, "blog posts", err)
			return
		}
		respond.JSON(w, http.StatusOK, posts)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.tr.Message(w, http.StatusBadRequest, l, locale.KeyInvalidPayload)
		return
	}
	post, err := h.pages.BlogPost(r.Context(), l, id)
	if err != nil {
		h.fail(w, r, l, "blog post", err)
		return
	}
	if post == nil {
		h.tr.Message(w, http.StatusNotFound, l, locale.KeyNotFound)
		return
	}
	respond.JSON(w, http.StatusOK, post)
}

// Testimonials handles GET /api/testimonials.
func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	l, ok := h.lang(w, r, locale.English)
	if !ok {
		return
	}
	page, err := h.pages.Testimonials(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "testimonials", err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}
