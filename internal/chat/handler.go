package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lemerle/medassist/internal/http/respond"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

// Handler serves POST /api/chat.
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

type request struct {
	Messages json.RawMessage `json:"messages"`
	Lang     string          `json:"lang"`
}

// Reply is the response body.
type Reply struct {
	Message string `json:"message"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 256<<10)).Decode(&req); err != nil {
		h.tr.Message(w, http.StatusBadRequest, locale.FromRequest(r, h.fallback), locale.KeyChatInvalidInput)
		return
	}
	lang, err := locale.Parse(req.Lang)
	if err != nil {
		lang = locale.FromRequest(r, h.fallback)
	}

	raw := bytes.TrimSpace(req.Messages)
	if len(raw) == 0 || raw[0] != '[' {
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyChatInvalidInput)
		return
	}
	var history []Message
	if err := json.Unmarshal(raw, &history); err != nil {
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyChatInvalidInput)
		return
	}

	text, err := h.svc.Reply(r.Context(), history, lang)
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, Reply{Message: text})
	case errors.Is(err, ErrInvalidInput):
		h.tr.Message(w, http.StatusBadRequest, lang, locale.KeyChatInvalidInput)
	case errors.Is(err, ErrUnavailable):
		h.tr.Message(w, http.StatusServiceUnavailable, lang, locale.KeyChatUnavailable)
	default:
		h.logger.Error("chat completion failed", "error", err)
		h.tr.Message(w, http.StatusBadGateway, lang, locale.KeyChatFailed)
	}
}
