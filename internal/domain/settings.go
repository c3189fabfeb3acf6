package domain

import "time"

// ShopDeliverySettings represents the delivery-date configuration of a shop.
// One row per shop; unknown shops resolve to DefaultSettings.
type ShopDeliverySettings struct {
	Shop string

	LeadTimeDays int    // minimum business days between "today" and the earliest delivery date
	RangeDays    int    // length of the selectable window in calendar days, min date inclusive
	CutoffTime   string // "HH:MM"; empty or CutoffNone disables the cutoff
	NoticeText   string

	TimeSlots     []string // ordered, deduplicated labels; arbitrary text
	Holidays      []string // mixed tokens: weekday tags ("Sun") and dates ("2025-01-01")
	BlackoutDates []string // "YYYY-MM-DD" tokens

	Show     ShowFlags
	Required RequiredFlags
	AttrNames AttrNames

	CarrierPreset string

	DenyTags     []string
	TagOverrides []TagOverrideRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShowFlags управляет видимостью полей выбора на витрине
type ShowFlags struct {
	Date      bool
	Time      bool
	Placement bool
}

// RequiredFlags управляет обязательностью полей выбора
type RequiredFlags struct {
	Date      bool
	Time      bool
	Placement bool
}

// AttrNames names under which selections are recorded in the cart.
// Opaque to the policy engine.
type AttrNames struct {
	Date      string
	Time      string
	Placement string
}

// TagOverrideRule is a (tag, partial settings) pair. Rules are evaluated in
// list order; the first rule whose tag is present on a cart product wins.
type TagOverrideRule struct {
	Tag      string
	Override SettingsOverride
}

// SettingsOverride is a field-level partial of ShopDeliverySettings.
// Nil fields leave the base value untouched.
type SettingsOverride struct {
	LeadTimeDays *int
	RangeDays    *int

	ShowDate      *bool
	ShowTime      *bool
	ShowPlacement *bool

	RequireDate *bool
	RequireTime *bool

	NoticeText    *string
	TimeSlots     []string // nil = untouched; non-nil replaces (deduplicated)
	CarrierPreset *string
}

// PolicyState is the deny-tag verdict attached to effective settings.
type PolicyState struct {
	Disabled bool
	Reason   string // PolicyReasonDenyTag when disabled by a deny tag
}

// EffectiveSettings is a per-query derived value: the base settings with at
// most one override rule applied, plus the policy verdict. Never persisted.
type EffectiveSettings struct {
	Settings ShopDeliverySettings
	Policy   PolicyState
}

// NormalizeRequired enforces the display/requirement invariant:
// a hidden field can never be required, and placement is never required.
func (s *ShopDeliverySettings) NormalizeRequired() {
	if !s.Show.Date {
		s.Required.Date = false
	}
	if !s.Show.Time {
		s.Required.Time = false
	}
	s.Required.Placement = false
}

// DefaultSettings returns the documented configuration used for shops that
// have no stored row yet.
func DefaultSettings(shop string) *ShopDeliverySettings {
	s := &ShopDeliverySettings{
		Shop:          shop,
		LeadTimeDays:  DefaultLeadTimeDays,
		RangeDays:     DefaultRangeDays,
		CutoffTime:    "",
		TimeSlots:     []string{},
		Holidays:      []string{},
		BlackoutDates: []string{},
		Show:          ShowFlags{Date: true, Time: true, Placement: false},
		Required:      RequiredFlags{Date: true, Time: false, Placement: false},
		AttrNames: AttrNames{
			Date:      DefaultAttrDateName,
			Time:      DefaultAttrTimeName,
			Placement: DefaultAttrPlacementName,
		},
		CarrierPreset: CarrierCustom,
		DenyTags:      []string{},
		TagOverrides:  []TagOverrideRule{},
	}
	s.NormalizeRequired()
	return s
}
