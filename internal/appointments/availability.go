package appointments

import "time"

// Starts lists every slot start on day's opening window, stepping by
// interval. A start is emitted only when it is strictly before closing.
func (s *Schedule) Starts(day time.Time, interval time.Duration) []time.Time {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	day = s.StartOfDay(day)
	h, ok := s.hours[day.Weekday()]
	if !ok {
		return nil
	}
	open := time.Date(day.Year(), day.Month(), day.Day(), h.Open, 0, 0, 0, s.loc)
	closing := time.Date(day.Year(), day.Month(), day.Day(), h.Close, 0, 0, 0, s.loc)

	var out []time.Time
	for t := open; t.Before(closing); t = t.Add(interval) {
		out = append(out, t)
	}
	return out
}

// OpenSlots returns the HH:MM starts on day that are neither booked nor
// already past. booked holds persisted HH:MM:SS times for that day.
func (s *Schedule) OpenSlots(day time.Time, interval time.Duration, booked []string, now time.Time) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	slots := make([]string, 0)
	for _, start := range s.Starts(day, interval) {
		if start.Before(now) {
			continue
		}
		if _, ok := taken[FormatClock(start)]; ok {
			continue
		}
		slots = append(slots, start.Format("15:04"))
	}
	return slots
}
