package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
)

// 2025-06-04 is a Wednesday.
var wednesdayMorning = time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, s *Schedule, date, clock string) time.Time {
	t.Helper()
	slot, err := s.ParseSlot(date, clock)
	require.NoError(t, err)
	return slot
}

func requireKey(t *testing.T, err error, kind apperr.Kind, key locale.Key) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperr.KindOf(err))
	assert.Equal(t, key, apperr.KeyOf(err, ""))
}

func TestCheckRejectsPastDaysAtAnyTime(t *testing.T) {
	s := NewSchedule(time.UTC)
	for _, tc := range []struct{ date, clock string }{
		{"2025-06-03", "09:00"},
		{"2025-06-03", "23:59"},
		{"2025-06-02", "08:00"},
		{"2024-12-31", "10:00"},
		{"2025-06-01", "03:00"},
	} {
		err := s.Check(mustSlot(t, s, tc.date, tc.clock), wednesdayMorning)
		requireKey(t, err, apperr.KindValidation, locale.KeyPastDate)
	}
}

func TestCheckAllowsEarlierTimeToday(t *testing.T) {
	s := NewSchedule(time.UTC)
	now := time.Date(2025, time.June, 4, 15, 0, 0, 0, time.UTC)
	assert.NoError(t, s.Check(mustSlot(t, s, "2025-06-04", "09:00"), now))
}

func TestCheckWeeklyGrid(t *testing.T) {
	s := NewSchedule(time.UTC)
	// 2025-06-09 is a Monday.
	monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		for hour := 0; hour < 24; hour++ {
			slot := day.Add(time.Duration(hour) * time.Hour)
			var want bool
			switch day.Weekday() {
			case time.Saturday:
				want = hour >= 8 && hour < 12
			case time.Sunday:
				want = false
			default:
				want = hour >= 8 && hour < 17
			}

			err := s.Check(slot, wednesdayMorning)
			if want {
				assert.NoError(t, err, "%s %02d:00", day.Weekday(), hour)
			} else {
				requireKey(t, err, apperr.KindValidation, locale.KeyInvalidDateTime)
			}
		}
	}
}

func TestCheckBoundaries(t *testing.T) {
	s := NewSchedule(time.UTC)
	tests := []struct {
		date, clock string
		ok          bool
	}{
		{"2025-06-09", "08:00", true},
		{"2025-06-09", "07:59", false},
		{"2025-06-09", "16:59", true},
		{"2025-06-09", "17:00", false},
		{"2025-06-14", "11:59", true},
		{"2025-06-14", "12:00", false},
		{"2025-06-15", "10:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.date+" "+tt.clock, func(t *testing.T) {
			err := s.Check(mustSlot(t, s, tt.date, tt.clock), wednesdayMorning)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			requireKey(t, err, apperr.KindValidation, locale.KeyInvalidDateTime)
		})
	}
}

func TestCheckRejectionIsRepeatable(t *testing.T) {
	s := NewSchedule(time.UTC)
	slot := mustSlot(t, s, "2025-06-15", "10:00")
	first := s.Check(slot, wednesdayMorning)
	second := s.Check(slot, wednesdayMorning)
	assert.Equal(t, apperr.KindOf(first), apperr.KindOf(second))
	assert.Equal(t, apperr.KeyOf(first, ""), apperr.KeyOf(second, ""))
}

func TestParseSlot(t *testing.T) {
	s := NewSchedule(time.UTC)

	short := mustSlot(t, s, "2025-06-02", "09:00")
	long := mustSlot(t, s, "2025-06-02", "09:00:00")
	assert.True(t, short.Equal(long))
	assert.Equal(t, "2025-06-02", FormatDate(short))
	assert.Equal(t, "09:00:00", FormatClock(short))

	for _, tc := range []struct{ date, clock string }{
		{"2025-13-01", "09:00"},
		{"02/06/2025", "09:00"},
		{"2025-06-02", "9h"},
		{"2025-06-02", "25:00"},
	} {
		_, err := s.ParseSlot(tc.date, tc.clock)
		requireKey(t, err, apperr.KindValidation, locale.KeyInvalidDateTime)
	}
}

func TestCheckUsesBusinessTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	s := NewSchedule(loc)
	// 23:30 UTC on the 4th is already the 5th locally.
	now := time.Date(2025, time.June, 4, 23, 30, 0, 0, time.UTC)

	err := s.Check(mustSlot(t, s, "2025-06-04", "16:00"), now)
	requireKey(t, err, apperr.KindValidation, locale.KeyPastDate)
	assert.NoError(t, s.Check(mustSlot(t, s, "2025-06-05", "08:00"), now))
}
