package schedule

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// HolidaySet holds the shop's non-business days: a weekday component
// ("every Sunday") and an explicit-date component. Holidays affect
// business-day counting only, never direct selectability.
type HolidaySet struct {
	weekdays map[string]struct{}
	dates    map[string]struct{}
}

// BuildHolidaySet partitions raw holiday tokens by format: weekday tags go
// into the weekday component, strict YYYY-MM-DD strings into the date
// component. Tokens matching neither are dropped silently; malformed
// configuration must not break the pipeline.
func BuildHolidaySet(tokens []string) HolidaySet {
	set := HolidaySet{
		weekdays: make(map[string]struct{}),
		dates:    make(map[string]struct{}),
	}
	for _, raw := range tokens {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if isWeekdayTag(s) {
			set.weekdays[s] = struct{}{}
		} else if IsValidYMD(s) {
			set.dates[s] = struct{}{}
		}
	}
	return set
}

func isWeekdayTag(s string) bool {
	for _, k := range domain.WeekdayKeys {
		if s == k {
			return true
		}
	}
	return false
}

// Contains reports whether d is a holiday: its weekday tag is blocked or its
// formatted date is listed explicitly.
func (h HolidaySet) Contains(d time.Time) bool {
	if _, ok := h.dates[FormatYMD(d)]; ok {
		return true
	}
	_, ok := h.weekdays[WeekdayTag(d)]
	return ok
}

// ContainsYMD reports whether the formatted date ymd (assumed valid) is a holiday.
func (h HolidaySet) ContainsYMD(ymd string) bool {
	d, ok := ParseYMD(ymd)
	if !ok {
		return false
	}
	return h.Contains(d)
}

// WeekdayCount возвращает количество заблокированных дней недели
func (h HolidaySet) WeekdayCount() int {
	return len(h.weekdays)
}

// AllWeekdaysBlocked reports the pathological configuration where every
// weekday is a holiday and no business day exists.
func (h HolidaySet) AllWeekdaysBlocked() bool {
	return len(h.weekdays) == len(domain.WeekdayKeys)
}

// BlackoutSet holds dates that must never be selectable, independent of
// business-day status.
type BlackoutSet map[string]struct{}

// BuildBlackoutSet keeps only strict YYYY-MM-DD tokens; everything else is
// dropped silently.
func BuildBlackoutSet(tokens []string) BlackoutSet {
	set := make(BlackoutSet)
	for _, raw := range tokens {
		s := strings.TrimSpace(raw)
		if IsValidYMD(s) {
			set[s] = struct{}{}
		}
	}
	return set
}

// Contains reports whether d is a blackout date.
func (b BlackoutSet) Contains(d time.Time) bool {
	_, ok := b[FormatYMD(d)]
	return ok
}

// ContainsYMD reports whether the formatted date ymd is a blackout date.
func (b BlackoutSet) ContainsYMD(ymd string) bool {
	_, ok := b[ymd]
	return ok
}
