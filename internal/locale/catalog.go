package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Key names one localized message.
type Key string

// Catalog is a lookup table of message key -> locale -> text.
type Catalog struct {
	entries map[Key]map[Locale]string
}

// NewCatalog wraps the given entries. Call Validate before serving traffic.
func NewCatalog(entries map[Key]map[Locale]string) *Catalog {
	return &Catalog{entries: entries}
}

// Default returns the site catalog.
func Default() *Catalog {
	return NewCatalog(messages)
}

// Validate enforces that every key has a non-empty entry for every
// supported locale.
func (c *Catalog) Validate() error {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		byLocale := c.entries[Key(k)]
		for _, l := range Supported {
			if strings.TrimSpace(byLocale[l]) == "" {
				errs = append(errs, fmt.Errorf("locale: missing %q for %s", k, l))
			}
		}
	}
	return errors.Join(errs...)
}

// Has reports whether key is present in the catalog.
func (c *Catalog) Has(key Key) bool {
	_, ok := c.entries[key]
	return ok
}

// Text returns the message for key in l. Unknown locales fall back to
// French; unknown keys return the key itself.
func (c *Catalog) Text(l Locale, key Key) string {
	byLocale, ok := c.entries[key]
	if !ok {
		return string(key)
	}
	if text, ok := byLocale[l]; ok && text != "" {
		return text
	}
	return byLocale[French]
}

// Format is Text followed by fmt.Sprintf with args.
func (c *Catalog) Format(l Locale, key Key, args ...any) string {
	return fmt.Sprintf(c.Text(l, key), args...)
}
