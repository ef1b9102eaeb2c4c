// Package locale owns the supported site languages, request negotiation and
// the localized message catalog.
package locale

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported language tags.
type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Supported lists every locale the site serves, in negotiation priority order.
var Supported = []Locale{French, English, Arabic}

// ErrUnsupported is returned for language tags outside Supported.
var ErrUnsupported = errors.New("locale: unsupported language")

var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
	language.Arabic,
})

// Parse validates a raw tag such as "fr" or "AR".
func Parse(raw string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range Supported {
		if l == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, raw)
}

// IsRTL reports whether the locale is written right-to-left.
func (l Locale) IsRTL() bool {
	return l == Arabic
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Supported[idx]
}

// FromQuery reads the "lang" query parameter strictly: an absent parameter
// yields fallback, an unsupported one yields ErrUnsupported.
func FromQuery(r *http.Request, fallback Locale) (Locale, error) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return fallback, nil
	}
	return Parse(raw)
}

// FromRequest resolves a locale leniently: the "lang" query parameter wins
// when valid, then Accept-Language, then fallback.
func FromRequest(r *http.Request, fallback Locale) Locale {
	if l, err := Parse(r.URL.Query().Get("lang")); err == nil {
		return l
	}
	return Negotiate(r.Header.Get("Accept-Language"), fallback)
}
