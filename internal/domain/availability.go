package domain

import "time"

// Interval is a half-open [StartDate, EndDate) date range during which a
// room cannot be newly booked.
type Interval struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Overlaps reports whether [start, end) intersects [other.StartDate,
// other.EndDate). Touching endpoints do not count: a stay may check in on
// another stay's check-out day.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.EndDate) && end.After(iv.StartDate)
}

// IsAvailable reports whether the candidate range overlaps none of the
// stored intervals.
func IsAvailable(intervals []Interval, start, end time.Time) bool {
	for _, iv := range intervals {
		if iv.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// Reserve appends the range to the interval list. The input slice is not
// modified.
func Reserve(intervals []Interval, start, end time.Time) []Interval {
	out := make([]Interval, 0, len(intervals)+1)
	out = append(out, intervals...)
	return append(out, Interval{StartDate: start, EndDate: end})
}

// Release removes the first stored interval whose boundaries equal the given
// range exactly. A range with no exact match is a no-op. The input slice is
// not modified.
func Release(intervals []Interval, start, end time.Time) []Interval {
	out := make([]Interval, 0, len(intervals))
	removed := false
	for _, iv := range intervals {
		if !removed && iv.StartDate.Equal(start) && iv.EndDate.Equal(end) {
			removed = true
			continue
		}
		out = append(out, iv)
	}
	return out
}
