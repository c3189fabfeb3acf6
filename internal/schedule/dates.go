package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ymdRe строгий формат календарной даты YYYY-MM-DD
var ymdRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatYMD formats d as a zero-padded "YYYY-MM-DD" calendar date.
func FormatYMD(d time.Time) string {
	return d.Format(domain.DateFormat)
}

// IsValidYMD reports whether s matches the strict YYYY-MM-DD format.
func IsValidYMD(s string) bool {
	return ymdRe.MatchString(s)
}

// ParseYMD parses a strict YYYY-MM-DD string into a local midnight.
// The boolean is false for anything that does not match the format or is not
// a real calendar date.
func ParseYMD(s string) (time.Time, bool) {
	if !ymdRe.MatchString(s) {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(domain.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Midnight truncates t to its local calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts d by n calendar days, rolling over month and year
// boundaries on local wall-clock fields.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// WeekdayTag returns the "Sun".."Sat" tag of d's local day of week.
func WeekdayTag(d time.Time) string {
	return domain.WeekdayKeys[int(d.Weekday())]
}

// ParseHHmm tolerantly parses an "HH:mm" string. Malformed or missing input
// yields {0, 0}; an invalid cutoff never advances the date, and the caller
// short-circuits on IsValidCutoff before the value matters.
func ParseHHmm(s string) (h, m int) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) > 0 {
		if v, err := strconv.Atoi(parts[0]); err == nil {
			h = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(parts[1]); err == nil {
			m = v
		}
	}
	return h, m
}
