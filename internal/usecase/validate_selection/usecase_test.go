package validate_selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

type fakeSettingsRepo struct {
	settings *domain.ShopDeliverySettings
}

func (f *fakeSettingsRepo) GetOrDefault(_ context.Context, shop string) (*domain.ShopDeliverySettings, error) {
	if f.settings != nil {
		copied := *f.settings
		return &copied, nil
	}
	return domain.DefaultSettings(shop), nil
}

type fakeTagsService struct {
	tags map[string]struct{}
}

func (f *fakeTagsService) CartProductTags(_ context.Context, _ string, _ []int64) map[string]struct{} {
	if f.tags == nil {
		return map[string]struct{}{}
	}
	return f.tags
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testShop = "demo.myshopify.com"

func newUseCase(settings *domain.ShopDeliverySettings, tags map[string]struct{}, now time.Time) *UseCase {
	uc := NewUseCase(&fakeSettingsRepo{settings: settings}, &fakeTagsService{tags: tags}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

// now Monday 2025-03-10 10:00, lead 1, range 3 → window [2025-03-11, 2025-03-13]
func narrowWindowSettings() *domain.ShopDeliverySettings {
	s := domain.DefaultSettings(testShop)
	s.LeadTimeDays = 1
	s.RangeDays = 3
	return s
}

func marchMonday() time.Time {
	return time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local)
}

func TestExecuteRequiresShop(t *testing.T) {
	uc := newUseCase(nil, nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAcceptsDateInsideWindow(t *testing.T) {
	uc := newUseCase(narrowWindowSettings(), nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-12"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Reason)
}

func TestExecuteRejectsDateOutOfRange(t *testing.T) {
	uc := newUseCase(narrowWindowSettings(), nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-20"})
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, ReasonOutOfRange, resp.Reason)
	assert.Equal(t, "2025-03-11", resp.MinDate)
	assert.Equal(t, "2025-03-13", resp.MaxDate)
}

func TestExecuteRejectsMalformedDate(t *testing.T) {
	uc := newUseCase(narrowWindowSettings(), nil, marchMonday())

	for _, bad := range []string{"2025/03/12", "12-03-2025", "2025-3-12", "tomorrow"} {
		resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: bad})
		require.NoError(t, err)
		assert.False(t, resp.OK, "date %q", bad)
		assert.Equal(t, ReasonInvalidDateFormat, resp.Reason, "date %q", bad)
	}
}

func TestExecuteRejectsMissingRequiredDate(t *testing.T) {
	uc := newUseCase(narrowWindowSettings(), nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop})
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, ReasonDateRequired, resp.Reason)
}

func TestExecuteAcceptsMissingOptionalDate(t *testing.T) {
	s := narrowWindowSettings()
	s.Required.Date = false

	uc := newUseCase(s, nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecuteRejectsBlackoutDate(t *testing.T) {
	s := narrowWindowSettings()
	s.BlackoutDates = []string{"2025-03-12"}

	uc := newUseCase(s, nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-12"})
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, ReasonDisabledDate, resp.Reason)
}

func TestExecuteHolidayInsideWindowStaysSelectable(t *testing.T) {
	s := narrowWindowSettings()
	// 2025-03-12 is a Wednesday; marking Wednesdays as holiday shifts the
	// window start but does not forbid picking a Wednesday inside it
	s.Holidays = []string{"2025-03-20"} // far outside the window: window unchanged

	uc := newUseCase(s, nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-12"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecuteTimeSlotValidation(t *testing.T) {
	s := narrowWindowSettings()
	s.TimeSlots = []string{"午前中", "14:00-16:00"}
	s.Required.Time = true

	uc := newUseCase(s, nil, marchMonday())

	// missing required time
	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-12"})
	require.NoError(t, err)
	assert.Equal(t, ReasonTimeRequired, resp.Reason)

	// unknown slot
	resp, err = uc.Execute(context.Background(), &Request{
		Shop: testShop, DeliveryDate: "2025-03-12", DeliveryTime: "03:00-05:00",
	})
	require.NoError(t, err)
	assert.Equal(t, ReasonInvalidTimeSlot, resp.Reason)

	// offered slot
	resp, err = uc.Execute(context.Background(), &Request{
		Shop: testShop, DeliveryDate: "2025-03-12", DeliveryTime: "午前中",
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecuteRejectsTimeWhenNoSlotsConfigured(t *testing.T) {
	s := narrowWindowSettings()
	s.TimeSlots = nil

	uc := newUseCase(s, nil, marchMonday())

	// без настроенных слотов нет ни одного допустимого значения времени
	resp, err := uc.Execute(context.Background(), &Request{
		Shop: testShop, DeliveryDate: "2025-03-12", DeliveryTime: "03:00-05:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, ReasonInvalidTimeSlot, resp.Reason)

	// пустое время при необязательном поле по-прежнему проходит
	resp, err = uc.Execute(context.Background(), &Request{
		Shop: testShop, DeliveryDate: "2025-03-12",
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecuteDenyTagAcceptsCartWithoutDate(t *testing.T) {
	s := narrowWindowSettings()
	s.DenyTags = []string{"frozen"}

	uc := newUseCase(s, map[string]struct{}{"frozen": {}}, marchMonday())

	// policy disabled: the storefront renders no picker, an empty
	// selection is the expected state
	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, ProductIDs: []int64{1}})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecuteOverrideWindowApplies(t *testing.T) {
	s := narrowWindowSettings()
	lead := 5
	s.TagOverrides = []domain.TagOverrideRule{
		{Tag: "frozen", Override: domain.SettingsOverride{LeadTimeDays: &lead}},
	}

	uc := newUseCase(s, map[string]struct{}{"frozen": {}}, marchMonday())

	// 2025-03-12 is valid for the base window but not after the override
	resp, err := uc.Execute(context.Background(), &Request{
		Shop: testShop, DeliveryDate: "2025-03-12", ProductIDs: []int64{1},
	})
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, ReasonOutOfRange, resp.Reason)
}

func TestExecuteConfigFault(t *testing.T) {
	s := narrowWindowSettings()
	s.Holidays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	uc := newUseCase(s, nil, marchMonday())

	_, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "2025-03-12"})
	require.ErrorIs(t, err, ErrConfigFault)
}

func TestExecuteHiddenDateFieldSkipsDateChecks(t *testing.T) {
	s := narrowWindowSettings()
	s.Show.Date = false
	s.NormalizeRequired()

	uc := newUseCase(s, nil, marchMonday())

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, DeliveryDate: "garbage"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}
