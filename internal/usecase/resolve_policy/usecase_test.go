package resolve_policy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/ptr"
)

type fakeSettingsRepo struct {
	settings *domain.ShopDeliverySettings
	err      error
}

func (f *fakeSettingsRepo) GetOrDefault(_ context.Context, shop string) (*domain.ShopDeliverySettings, error) {
	if f.err != nil {
		return nil, f.err
	}
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

func newUseCase(repo *fakeSettingsRepo, tags *fakeTagsService, now time.Time) *UseCase {
	uc := NewUseCase(repo, tags, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecuteRequiresShop(t *testing.T) {
	uc := newUseCase(&fakeSettingsRepo{}, &fakeTagsService{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteDefaultSettings(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local) // Monday
	uc := newUseCase(&fakeSettingsRepo{}, &fakeTagsService{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop})
	require.NoError(t, err)
	assert.False(t, resp.Effective.Policy.Disabled)
	// lead 1 business day, no holidays: min is tomorrow
	assert.Equal(t, "2025-06-03", resp.Window.MinYMD())
	assert.Equal(t, "2025-07-02", resp.Window.MaxYMD())
	assert.Empty(t, resp.DisabledDates)
}

func TestExecuteDenyTagDisablesPolicy(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local)
	base := domain.DefaultSettings(testShop)
	base.DenyTags = []string{"no-date"}

	uc := newUseCase(
		&fakeSettingsRepo{settings: base},
		&fakeTagsService{tags: map[string]struct{}{"no-date": {}}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, ProductIDs: []int64{1}})
	require.NoError(t, err)
	assert.True(t, resp.Effective.Policy.Disabled)
	assert.Equal(t, domain.PolicyReasonDenyTag, resp.Effective.Policy.Reason)
	// no window is computed for a disabled policy
	assert.True(t, resp.Window.MinDate.IsZero())
	assert.Empty(t, resp.DisabledDates)
}

func TestExecuteOverrideChangesWindow(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local)
	base := domain.DefaultSettings(testShop)
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "frozen", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(3)}},
	}

	uc := newUseCase(
		&fakeSettingsRepo{settings: base},
		&fakeTagsService{tags: map[string]struct{}{"frozen": {}}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop, ProductIDs: []int64{1}})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Effective.Settings.LeadTimeDays)
	assert.Equal(t, "2025-06-05", resp.Window.MinYMD())
}

func TestExecuteDisabledDatesInsideWindow(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local)
	base := domain.DefaultSettings(testShop)
	base.RangeDays = 7
	base.BlackoutDates = []string{"2025-06-05", "2025-12-31"}

	uc := newUseCase(&fakeSettingsRepo{settings: base}, &fakeTagsService{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Shop: testShop})
	require.NoError(t, err)
	// only the blackout inside the window is enumerated
	assert.Equal(t, []string{"2025-06-05"}, resp.DisabledDates)
}

func TestExecuteConfigFault(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local)
	base := domain.DefaultSettings(testShop)
	base.Holidays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	uc := newUseCase(&fakeSettingsRepo{settings: base}, &fakeTagsService{}, now)

	_, err := uc.Execute(context.Background(), &Request{Shop: testShop})
	require.ErrorIs(t, err, ErrConfigFault)
}
