package locale

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, err := Parse(" AR ")
	require.NoError(t, err)
	assert.Equal(t, Arabic, l)
	assert.True(t, l.IsRTL())

	_, err = Parse("de")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", French},
		{"en-US,en;q=0.9", English},
		{"ar-MA", Arabic},
		{"fr-CA,fr;q=0.8,en;q=0.5", French},
		{"ja", French},
		{"!!garbage", French},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header, French))
		})
	}
}

func TestFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/services", nil)
	l, err := FromQuery(r, English)
	require.NoError(t, err)
	assert.Equal(t, English, l)

	r = httptest.NewRequest("GET", "/api/services?lang=ar", nil)
	l, err = FromQuery(r, English)
	require.NoError(t, err)
	assert.Equal(t, Arabic, l)

	r = httptest.NewRequest("GET", "/api/services?lang=xx", nil)
	_, err = FromQuery(r, English)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFromRequestPrefersQueryThenHeader(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/appointments?lang=en", nil)
	r.Header.Set("Accept-Language", "ar")
	assert.Equal(t, English, FromRequest(r, French))

	r = httptest.NewRequest("POST", "/api/appointments?lang=zz", nil)
	r.Header.Set("Accept-Language", "ar")
	assert.Equal(t, Arabic, FromRequest(r, French))

	r = httptest.NewRequest("POST", "/api/appointments", nil)
	assert.Equal(t, French, FromRequest(r, French))
}

func TestDefaultCatalogIsComplete(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestCatalogValidateReportsMissingEntries(t *testing.T) {
	c := NewCatalog(map[Key]map[Locale]string{
		"greeting": {French: "Bonjour", English: "Hello"},
		"bye":      {French: "Au revoir", English: " ", Arabic: "مع السلامة"},
	})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"greeting" for ar`)
	assert.Contains(t, err.Error(), `"bye" for en`)
}

func TestCatalogText(t *testing.T) {
	c := Default()
	assert.Equal(t, "Our Services", c.Text(English, KeyServicesTitle))
	assert.Equal(t, "خدماتنا", c.Text(Arabic, KeyServicesTitle))
	assert.Equal(t, "Nos services", c.Text(Locale("xx"), KeyServicesTitle))
	assert.Equal(t, "nope", c.Text(English, Key("nope")))
	assert.True(t, c.Has(KeySlotTaken))
	assert.Equal(t, "New contact message from Alice", c.Format(English, KeyContactEmailSubject, "Alice"))
}
