package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// строгий 24-часовой формат HH:MM
var timeStringRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TimeString represents a wall-clock time of day in "HH:MM" form.
// It carries no date and no timezone.
type TimeString string

// NewTimeString создает TimeString из time.Time (только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString validates s against the strict HH:MM format.
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeStringRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// IsValidTimeString reports whether s is a strict 24h HH:MM value.
func IsValidTimeString(s string) bool {
	return timeStringRe.MatchString(s)
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает время в минутах от полуночи
func (t TimeString) Minutes() int {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// HourMinute returns the hour and minute components. A malformed value
// yields {0, 0}.
func (t TimeString) HourMinute() (int, int) {
	m := t.Minutes()
	return m / 60, m % 60
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за границы суток считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes is out of day range", ErrInvalidTimeString, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
