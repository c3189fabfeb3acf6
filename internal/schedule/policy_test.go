package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/ptr"
)

func baseSettings() domain.ShopDeliverySettings {
	return *domain.DefaultSettings("demo.myshopify.com")
}

func TestResolvePolicyDenyTag(t *testing.T) {
	base := baseSettings()
	base.DenyTags = []string{"frozen"}
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "sale", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(10)}},
	}

	// deny wins even though a rule for "sale" would also match
	got := ResolvePolicy(base, TagSet([]string{"frozen", "sale"}))

	assert.True(t, got.Policy.Disabled)
	assert.Equal(t, domain.PolicyReasonDenyTag, got.Policy.Reason)
	assert.Equal(t, base.LeadTimeDays, got.Settings.LeadTimeDays, "no override may be applied on deny")
}

func TestResolvePolicyFirstMatchWins(t *testing.T) {
	base := baseSettings()
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "chilled", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(2)}},
		{Tag: "bulky", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(7), RangeDays: ptr.Ptr(5)}},
	}

	got := ResolvePolicy(base, TagSet([]string{"bulky", "chilled"}))

	require.False(t, got.Policy.Disabled)
	assert.Equal(t, 2, got.Settings.LeadTimeDays)
	// the later rule is never consulted, not even for fields the first one left untouched
	assert.Equal(t, base.RangeDays, got.Settings.RangeDays)
}

func TestResolvePolicyPartialMerge(t *testing.T) {
	base := baseSettings()
	base.NoticeText = "standard notice"
	base.TimeSlots = []string{"10:00-12:00", "14:00-16:00"}
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "fragile", Override: domain.SettingsOverride{
			RangeDays:  ptr.Ptr(7),
			ShowTime:   ptr.Ptr(false),
			NoticeText: ptr.Ptr("handled with care"),
		}},
	}

	got := ResolvePolicy(base, TagSet([]string{"fragile"}))

	require.False(t, got.Policy.Disabled)
	assert.Equal(t, 7, got.Settings.RangeDays)
	assert.Equal(t, base.LeadTimeDays, got.Settings.LeadTimeDays, "absent fields stay untouched")
	assert.Equal(t, "handled with care", got.Settings.NoticeText)
	assert.Equal(t, base.TimeSlots, got.Settings.TimeSlots)
	assert.False(t, got.Settings.Show.Time)
	assert.False(t, got.Settings.Required.Time, "hiding a field drops its requirement")
}

func TestResolvePolicyNoMatch(t *testing.T) {
	base := baseSettings()
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "chilled", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(2)}},
	}

	got := ResolvePolicy(base, TagSet([]string{"plain"}))

	assert.False(t, got.Policy.Disabled)
	assert.Equal(t, base.LeadTimeDays, got.Settings.LeadTimeDays)
}

func TestResolvePolicySkipsMalformedRules(t *testing.T) {
	base := baseSettings()
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "   ", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(99)}},
		{Tag: "chilled", Override: domain.SettingsOverride{LeadTimeDays: ptr.Ptr(2)}},
	}

	got := ResolvePolicy(base, TagSet([]string{"chilled"}))

	assert.Equal(t, 2, got.Settings.LeadTimeDays)
}

func TestResolvePolicyPlacementNeverRequired(t *testing.T) {
	base := baseSettings()
	base.Required.Placement = true // untrusted row
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "gift", Override: domain.SettingsOverride{ShowPlacement: ptr.Ptr(true)}},
	}

	got := ResolvePolicy(base, TagSet([]string{"gift"}))

	assert.True(t, got.Settings.Show.Placement)
	assert.False(t, got.Settings.Required.Placement)

	// and on the no-match path too
	got = ResolvePolicy(base, TagSet(nil))
	assert.False(t, got.Settings.Required.Placement)
}

func TestResolvePolicyOverrideSlotsDeduplicated(t *testing.T) {
	base := baseSettings()
	base.TagOverrides = []domain.TagOverrideRule{
		{Tag: "am-only", Override: domain.SettingsOverride{
			TimeSlots: []string{"午前中", "午前中", " 10:00-12:00 ", ""},
		}},
	}

	got := ResolvePolicy(base, TagSet([]string{"am-only"}))

	assert.Equal(t, []string{"午前中", "10:00-12:00"}, got.Settings.TimeSlots)
}

func TestTagSetTrimsAndDeduplicates(t *testing.T) {
	set := TagSet([]string{" frozen ", "frozen", "", "sale"})
	assert.Len(t, set, 2)
	_, ok := set["frozen"]
	assert.True(t, ok)
	_, ok = set["sale"]
	assert.True(t, ok)
}

func TestUniqueStringsPreservesOrder(t *testing.T) {
	got := UniqueStrings([]string{"b", "a", "b", " c ", ""})
	assert.Equal(t, []string{"b", "a", "c"}, got)
}
