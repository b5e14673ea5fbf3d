package flow

import "time"

// PeriodWindow is an inclusive weekly reporting window.
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// snapToWeekEnd moves t forward to the end of its reporting week. Weeks
// close on Sunday at the last nanosecond of the day.
func snapToWeekEnd(t time.Time) time.Time {
	days := 0
	if wd := int(t.Weekday()); wd != 0 {
		days = 7 - wd
	}
	d := t.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, d.Location())
}

// RollingWindows builds n consecutive weekly windows ending at the week
// that contains anchor, oldest first. Each window spans Monday 00:00
// through Sunday end-of-day.
func RollingWindows(anchor time.Time, n int) []PeriodWindow {
	if n <= 0 {
		return nil
	}
	windows := make([]PeriodWindow, n)
	end := snapToWeekEnd(anchor)
	for i := n - 1; i >= 0; i-- {
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		windows[i] = PeriodWindow{Start: start, End: end}
		end = start.Add(-time.Nanosecond)
	}
	return windows
}
