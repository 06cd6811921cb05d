// Package schedule turns date-ranged task records into per-day occupancy,
// per-resource utilization and a stable display ordering. Every function is
// a pure transformation over an in-memory snapshot; malformed intervals and
// dangling resource references contribute empty output instead of errors so
// a partial view is always available.
package schedule

import "time"

// Day truncates t to its calendar date. All engine arithmetic works on
// zone-less dates pinned to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Window is an inclusive [Start, End] calendar-date range used to scope
// filtering, expansion and aggregation.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window from two timestamps, keeping only their dates.
func NewWindow(start, end time.Time) Window {
	return Window{Start: Day(start), End: Day(end)}
}

// Days returns the inclusive length of the window in whole days.
// Non-positive when End precedes Start.
func (w Window) Days() int {
	return int(Day(w.End).Sub(Day(w.Start)).Hours()/24) + 1
}

// Overlaps reports whether the inclusive interval [start, end] intersects
// the window.
func (w Window) Overlaps(start, end time.Time) bool {
	return !Day(start).After(Day(w.End)) && !Day(end).Before(Day(w.Start))
}
