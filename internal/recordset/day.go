package recordset

import "time"

// DayOf truncates t to the start of its calendar day in t's location.
// Every grouping in this package keys on this value, never raw timestamps.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday-anchored start of the calendar week holding t.
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of the calendar month holding t.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from a to b inclusive of both endpoints.
// Returns 0 when b is before a.
func DaysBetween(a, b time.Time) int {
	start := DayOf(a)
	end := DayOf(b)
	if end.Before(start) {
		return 0
	}
	days := 1
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
