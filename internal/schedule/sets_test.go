package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildHolidaySetPartitioning(t *testing.T) {
	set := BuildHolidaySet([]string{
		"Sun", " Sat ", "2025-12-31", "garbage", "", "2025-13-99", "Sun",
	})

	// weekday component
	assert.True(t, set.Contains(date(2025, time.March, 16)))  // Sunday
	assert.True(t, set.Contains(date(2025, time.March, 15)))  // Saturday
	assert.False(t, set.Contains(date(2025, time.March, 10))) // Monday

	// date component
	assert.True(t, set.ContainsYMD("2025-12-31"))
	assert.False(t, set.ContainsYMD("2025-12-30"))

	assert.Equal(t, 2, set.WeekdayCount())
	assert.False(t, set.AllWeekdaysBlocked())
}

func TestHolidayAndBlackoutAreOrthogonal(t *testing.T) {
	holidays := BuildHolidaySet([]string{"2025-05-05"})
	blackout := BuildBlackoutSet([]string{"2025-05-05", "2025-05-06"})

	both := date(2025, time.May, 5)
	assert.True(t, holidays.Contains(both))
	assert.True(t, blackout.Contains(both))

	onlyBlackout := date(2025, time.May, 6)
	assert.False(t, holidays.Contains(onlyBlackout))
	assert.True(t, blackout.Contains(onlyBlackout))
}

func TestBuildBlackoutSetDropsNonDates(t *testing.T) {
	set := BuildBlackoutSet([]string{"2025-01-01", "Sun", "not-a-date", " 2025-01-02 "})

	assert.True(t, set.ContainsYMD("2025-01-01"))
	assert.True(t, set.ContainsYMD("2025-01-02"))
	assert.False(t, set.ContainsYMD("Sun"))
	assert.Len(t, set, 2)
}

func TestParseYMD(t *testing.T) {
	d, ok := ParseYMD("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-10", FormatYMD(d))

	for _, bad := range []string{"2025-3-10", "20250310", "2025-03-10T00:00", "", "hello"} {
		_, ok := ParseYMD(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestWeekdayTag(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayTag(date(2025, time.March, 10)))
	assert.Equal(t, "Sun", WeekdayTag(date(2025, time.March, 16)))
}

func TestParseHHmm(t *testing.T) {
	h, m := ParseHHmm("15:30")
	assert.Equal(t, 15, h)
	assert.Equal(t, 30, m)

	h, m = ParseHHmm("")
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)

	h, m = ParseHHmm("bogus")
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}
