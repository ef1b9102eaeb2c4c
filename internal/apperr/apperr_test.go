package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lemerle/medassist/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("connection reset")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"validation", Validation("date", locale.KeyPastDate), KindValidation},
		{"wrapped conflict", fmt.Errorf("book: %w", Conflict(locale.KeySlotTaken, "2025-06-02 09:00")), KindConflict},
		{"store", Store("insert", locale.KeyBookingFailed, base), KindStore},
		{"plain", base, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, locale.KeyPastDate, KeyOf(Validation("date", locale.KeyPastDate), locale.KeyServerError))
	assert.Equal(t, locale.KeyBookingFailed, KeyOf(Store("insert", locale.KeyBookingFailed, errors.New("x")), locale.KeyServerError))
	assert.Equal(t, locale.KeyServerError, KeyOf(errors.New("x"), locale.KeyServerError))
}

func TestStoreErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	err := Store("count", locale.KeyBookingFailed, base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "store: count: boom", err.Error())
	assert.Equal(t, "conflict", KindConflict.String())
}
