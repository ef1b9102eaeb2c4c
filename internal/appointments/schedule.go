package appointments

import (
	"time"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// Hours is an opening window in whole hours, half-open: [Open, Close).
type Hours struct {
	Open  int
	Close int
}

// DefaultHours is the practice's weekly schedule. Days absent from the map
// are closed.
func DefaultHours() map[time.Weekday]Hours {
	return map[time.Weekday]Hours{
		time.Monday:    {Open: 8, Close: 17},
		time.Tuesday:   {Open: 8, Close: 17},
		time.Wednesday: {Open: 8, Close: 17},
		time.Thursday:  {Open: 8, Close: 17},
		time.Friday:    {Open: 8, Close: 17},
		time.Saturday:  {Open: 8, Close: 12},
	}
}

// Schedule decides which slots can be booked. All calendar math happens in
// the business timezone.
type Schedule struct {
	loc   *time.Location
	hours map[time.Weekday]Hours
}

// NewSchedule returns a schedule with DefaultHours in loc. A nil loc means UTC.
func NewSchedule(loc *time.Location) *Schedule {
	return NewScheduleWithHours(loc, DefaultHours())
}

func NewScheduleWithHours(loc *time.Location, hours map[time.Weekday]Hours) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	copied := make(map[time.Weekday]Hours, len(hours))
	for day, h := range hours {
		copied[day] = h
	}
	return &Schedule{loc: loc, hours: copied}
}

func (s *Schedule) Location() *time.Location {
	return s.loc
}

// HoursFor reports the window for a weekday.
func (s *Schedule) HoursFor(day time.Weekday) (Hours, bool) {
	h, ok := s.hours[day]
	return h, ok
}

// ParseDate parses a YYYY-MM-DD day as local midnight.
func (s *Schedule) ParseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, apperr.Validation("date", locale.KeyInvalidDateTime)
	}
	return day, nil
}

// ParseSlot combines a date and a HH:MM or HH:MM:SS clock into one instant.
func (s *Schedule) ParseSlot(date, clock string) (time.Time, error) {
	day, err := s.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	var tod time.Time
	for _, layout := range []string{"15:04", clockLayout} {
		if tod, err = time.Parse(layout, clock); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, apperr.Validation("time", locale.KeyInvalidDateTime)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, s.loc), nil
}

// StartOfDay is local midnight of t's calendar day.
func (s *Schedule) StartOfDay(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// Check applies the booking rules in order: no past days, then opening hours.
func (s *Schedule) Check(slot, now time.Time) error {
	slot = slot.In(s.loc)
	if slot.Before(s.StartOfDay(now)) {
		return apperr.Validation("date", locale.KeyPastDate)
	}
	if !s.IsOpen(slot) {
		return apperr.Validation("time", locale.KeyInvalidDateTime)
	}
	return nil
}

// IsOpen reports whether slot falls inside the weekday's opening window.
func (s *Schedule) IsOpen(slot time.Time) bool {
	slot = slot.In(s.loc)
	h, ok := s.hours[slot.Weekday()]
	if !ok {
		return false
	}
	hour := slot.Hour()
	return hour >= h.Open && hour < h.Close
}

// FormatDate and FormatClock give the persisted representation of a slot.
func FormatDate(slot time.Time) string  { return slot.Format(dateLayout) }
func FormatClock(slot time.Time) string { return slot.Format(clockLayout) }
