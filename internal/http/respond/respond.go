// Package respond writes JSON responses and translates application errors
// into HTTP status codes and localized messages.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

// ErrorBody is the envelope returned for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Translator maps errors to responses.
type Translator struct {
	catalog *locale.Catalog
	logger  *logging.Logger
}

// NewTranslator builds a translator over a validated catalog.
func NewTranslator(catalog *locale.Catalog, logger *logging.Logger) *Translator {
	if catalog == nil {
		catalog = locale.Default()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Translator{catalog: catalog, logger: logger}
}

// Catalog exposes the message table used for translation.
func (t *Translator) Catalog() *locale.Catalog {
	return t.catalog
}

// Status returns the HTTP status for err.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the localized envelope for err. fallback names the message
// used when err carries no key of its own.
func (t *Translator) Error(w http.ResponseWriter, r *http.Request, l locale.Locale, err error, fallback locale.Key) {
	status := Status(err)
	key := apperr.KeyOf(err, fallback)
	if status >= http.StatusInternalServerError {
		t.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"kind", apperr.KindOf(err).String(),
			"error", err,
		)
		// Unknown errors never leak their key or text.
		if apperr.KindOf(err) == apperr.KindUnknown {
			key = fallback
		}
	}
	t.Message(w, status, l, key)
}

// Message writes an error envelope for a known key.
func (t *Translator) Message(w http.ResponseWriter, status int, l locale.Locale, key locale.Key) {
	JSON(w, status, ErrorBody{
		Error: t.catalog.Text(l, key),
		Code:  string(key),
	})
}
