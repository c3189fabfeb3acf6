package domain

import "time"

// AvailabilityWindow is the inclusive [MinDate, MaxDate] range of selectable
// delivery dates. Both bounds are shop-local midnights.
type AvailabilityWindow struct {
	MinDate time.Time
	MaxDate time.Time
}

// Contains reports whether d (compared by calendar date) lies inside the window.
func (w AvailabilityWindow) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return !day.Before(w.MinDate) && !day.After(w.MaxDate)
}

// Days returns the window length in calendar days (at least 1 for a valid window).
func (w AvailabilityWindow) Days() int {
	return int(w.MaxDate.Sub(w.MinDate).Hours()/24) + 1
}

// MinYMD возвращает нижнюю границу окна в формате YYYY-MM-DD
func (w AvailabilityWindow) MinYMD() string {
	return w.MinDate.Format(DateFormat)
}

// MaxYMD возвращает верхнюю границу окна в формате YYYY-MM-DD
func (w AvailabilityWindow) MaxYMD() string {
	return w.MaxDate.Format(DateFormat)
}
