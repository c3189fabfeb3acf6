package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		in      WindowInput
		wantMin string
		wantMax string
	}{
		{
			name: "lead time before cutoff",
			now:  at(2025, time.March, 10, 10, 0), // Monday
			in: WindowInput{
				LeadTimeDays: 1,
				RangeDays:    3,
				CutoffTime:   "15:00",
			},
			wantMin: "2025-03-11",
			wantMax: "2025-03-13",
		},
		{
			name: "past cutoff advances base day",
			now:  at(2025, time.March, 10, 16, 0),
			in: WindowInput{
				LeadTimeDays: 1,
				RangeDays:    3,
				CutoffTime:   "15:00",
			},
			wantMin: "2025-03-12",
			wantMax: "2025-03-14",
		},
		{
			name: "lead day landing on holiday weekday is skipped",
			now:  at(2025, time.March, 15, 9, 0), // Saturday
			in: WindowInput{
				LeadTimeDays: 1,
				RangeDays:    3,
				Holidays:     BuildHolidaySet([]string{"Sun"}),
			},
			wantMin: "2025-03-17",
			wantMax: "2025-03-19",
		},
		{
			name: "blackout pushes min date further",
			now:  at(2025, time.March, 15, 9, 0),
			in: WindowInput{
				LeadTimeDays: 1,
				RangeDays:    3,
				Holidays:     BuildHolidaySet([]string{"Sun"}),
				Blackout:     BuildBlackoutSet([]string{"2025-03-17"}),
			},
			wantMin: "2025-03-18",
			wantMax: "2025-03-20",
		},
		{
			name: "zero lead time keeps today",
			now:  at(2025, time.March, 10, 10, 0),
			in: WindowInput{
				LeadTimeDays: 0,
				RangeDays:    1,
			},
			wantMin: "2025-03-10",
			wantMax: "2025-03-10",
		},
		{
			name: "malformed cutoff never advances",
			now:  at(2025, time.March, 10, 23, 59),
			in: WindowInput{
				LeadTimeDays: 0,
				RangeDays:    1,
				CutoffTime:   "25:99",
			},
			wantMin: "2025-03-10",
			wantMax: "2025-03-10",
		},
		{
			name: "NONE sentinel disables cutoff",
			now:  at(2025, time.March, 10, 23, 59),
			in: WindowInput{
				LeadTimeDays: 0,
				RangeDays:    1,
				CutoffTime:   "NONE",
			},
			wantMin: "2025-03-10",
			wantMax: "2025-03-10",
		},
		{
			name: "holiday date skipped during lead counting",
			now:  at(2025, time.March, 10, 9, 0), // Monday
			in: WindowInput{
				LeadTimeDays: 2,
				RangeDays:    2,
				Holidays:     BuildHolidaySet([]string{"2025-03-11"}),
			},
			wantMin: "2025-03-13",
			wantMax: "2025-03-14",
		},
		{
			name: "negative lead and zero range are clamped",
			now:  at(2025, time.March, 10, 9, 0),
			in: WindowInput{
				LeadTimeDays: -5,
				RangeDays:    0,
			},
			wantMin: "2025-03-10",
			wantMax: "2025-03-10",
		},
		{
			name: "month rollover",
			now:  at(2025, time.March, 31, 9, 0),
			in: WindowInput{
				LeadTimeDays: 1,
				RangeDays:    2,
			},
			wantMin: "2025-04-01",
			wantMax: "2025-04-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeWindow(tt.now, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, got.MinYMD())
			assert.Equal(t, tt.wantMax, got.MaxYMD())
			assert.False(t, got.MaxDate.Before(got.MinDate))
		})
	}
}

func TestComputeWindowIdempotent(t *testing.T) {
	now := at(2025, time.March, 10, 14, 30)
	in := WindowInput{
		LeadTimeDays: 3,
		RangeDays:    14,
		CutoffTime:   "12:00",
		Holidays:     BuildHolidaySet([]string{"Sun", "Sat", "2025-03-14"}),
		Blackout:     BuildBlackoutSet([]string{"2025-03-18", "2025-03-19"}),
	}

	first, err := ComputeWindow(now, in)
	require.NoError(t, err)
	second, err := ComputeWindow(now, in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeWindowAllWeekdaysHoliday(t *testing.T) {
	_, err := ComputeWindow(at(2025, time.March, 10, 9, 0), WindowInput{
		LeadTimeDays: 1,
		RangeDays:    7,
		Holidays:     BuildHolidaySet([]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}),
	})
	require.ErrorIs(t, err, ErrNoBusinessDay)
}

func TestSelectableOnHoliday(t *testing.T) {
	// Holidays shift the window but never make an in-window date unselectable.
	holidays := BuildHolidaySet([]string{"Sun"})
	blackout := BuildBlackoutSet(nil)

	w := domain.AvailabilityWindow{
		MinDate: date(2025, time.March, 10),
		MaxDate: date(2025, time.March, 23),
	}

	sunday := date(2025, time.March, 16)
	require.True(t, holidays.Contains(sunday))
	assert.True(t, IsSelectable(sunday, w, blackout))
}

func TestBlackoutInsideWindow(t *testing.T) {
	blackout := BuildBlackoutSet([]string{"2025-03-12"})
	w := domain.AvailabilityWindow{
		MinDate: date(2025, time.March, 10),
		MaxDate: date(2025, time.March, 20),
	}

	assert.False(t, IsSelectable(date(2025, time.March, 12), w, blackout))
	assert.True(t, IsSelectable(date(2025, time.March, 13), w, blackout))
	assert.False(t, IsSelectable(date(2025, time.March, 9), w, blackout))
	assert.False(t, IsSelectable(date(2025, time.March, 21), w, blackout))
}

func TestDisabledDates(t *testing.T) {
	w := domain.AvailabilityWindow{
		MinDate: date(2025, time.March, 10), // Monday
		MaxDate: date(2025, time.March, 16), // Sunday
	}
	holidays := BuildHolidaySet([]string{"Sun", "2025-03-12"})
	blackout := BuildBlackoutSet([]string{"2025-03-14", "2025-04-01"}) // second one outside the window

	got := DisabledDates(w, holidays, blackout)
	assert.Equal(t, []string{"2025-03-12", "2025-03-14", "2025-03-16"}, got)
}

func TestIsValidCutoff(t *testing.T) {
	assert.True(t, IsValidCutoff("15:00"))
	assert.True(t, IsValidCutoff("00:00"))
	assert.True(t, IsValidCutoff("23:59"))
	assert.False(t, IsValidCutoff(""))
	assert.False(t, IsValidCutoff("NONE"))
	assert.False(t, IsValidCutoff("24:00"))
	assert.False(t, IsValidCutoff("9:00"))
	assert.False(t, IsValidCutoff("15:00:00"))
}
