package schedule

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// ErrNoBusinessDay возвращается, когда поиск следующего рабочего дня
// превышает domain.MaxBusinessDayScan итераций (например, все семь дней
// недели отмечены как выходные)
var ErrNoBusinessDay = errors.New("schedule: no business day reachable, configuration fault")

// WindowInput are the settings fields the window calculator consumes.
type WindowInput struct {
	LeadTimeDays int
	RangeDays    int
	CutoffTime   string
	Holidays     HolidaySet
	Blackout     BlackoutSet
}

// IsValidCutoff reports whether s is an active cutoff value: a strict 24h
// "HH:MM". Empty strings and the stored CutoffNone sentinel disable the cutoff.
func IsValidCutoff(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.CutoffNone {
		return false
	}
	return types.IsValidTimeString(s)
}

// ComputeWindow computes the inclusive [minDate, maxDate] selectable window.
//
//  1. base = local midnight of now, +1 day when now is strictly past a valid cutoff
//  2. base is pushed forward past holidays to the first business day
//  3. each lead-time day consumes exactly one business day; holidays in
//     between are skipped and do not count
//  4. minDate additionally skips blackout dates (blackout means "cannot be
//     the delivery date" even on an otherwise valid business day)
//  5. maxDate = minDate + (rangeDays - 1)
//
// Out-of-range inputs are clamped (leadTimeDays to >= 0, rangeDays to >= 1)
// so the calculator is total over untrusted rows; the settings service
// rejects them at write time.
func ComputeWindow(now time.Time, in WindowInput) (domain.AvailabilityWindow, error) {
	base := Midnight(now)

	if IsValidCutoff(in.CutoffTime) {
		h, m := ParseHHmm(in.CutoffTime)
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
		if now.After(cutoff) {
			base = AddDays(base, 1)
		}
	}

	leadDays := in.LeadTimeDays
	if leadDays < 0 {
		leadDays = 0
	}
	rangeDays := in.RangeDays
	if rangeDays < 1 {
		rangeDays = 1
	}

	scans := 0
	skipHolidays := func(d time.Time) (time.Time, error) {
		for in.Holidays.Contains(d) {
			d = AddDays(d, 1)
			scans++
			if scans > domain.MaxBusinessDayScan {
				return d, ErrNoBusinessDay
			}
		}
		return d, nil
	}

	cursor, err := skipHolidays(base)
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}

	for advanced := 0; advanced < leadDays; advanced++ {
		cursor, err = skipHolidays(AddDays(cursor, 1))
		if err != nil {
			return domain.AvailabilityWindow{}, err
		}
	}

	minDate := cursor
	for in.Blackout.Contains(minDate) {
		minDate = AddDays(minDate, 1)
		scans++
		if scans > domain.MaxBusinessDayScan {
			return domain.AvailabilityWindow{}, ErrNoBusinessDay
		}
	}

	return domain.AvailabilityWindow{
		MinDate: minDate,
		MaxDate: AddDays(minDate, rangeDays-1),
	}, nil
}

// IsSelectable reports whether d may be chosen as the delivery date: inside
// the window and not a blackout date. Holidays do NOT make a date
// unselectable on their own; they only shift the window via business-day
// counting.
func IsSelectable(d time.Time, w domain.AvailabilityWindow, blackout BlackoutSet) bool {
	return w.Contains(d) && !blackout.Contains(d)
}

// DisabledDates enumerates holidays and blackout dates inside the window,
// sorted, for calendar rendering. Rendering grays holidays out as a visual
// aid; single-candidate selectability checks go through IsSelectable, which
// ignores holidays.
func DisabledDates(w domain.AvailabilityWindow, holidays HolidaySet, blackout BlackoutSet) []string {
	seen := make(map[string]struct{})
	for d := w.MinDate; !d.After(w.MaxDate); d = AddDays(d, 1) {
		ymd := FormatYMD(d)
		if holidays.Contains(d) || blackout.ContainsYMD(ymd) {
			seen[ymd] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for ymd := range seen {
		out = append(out, ymd)
	}
	sort.Strings(out)
	return out
}
