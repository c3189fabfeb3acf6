package settings

import (
	"encoding/json"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Wire format of JSON columns. Field names match what the storefront script
// and the admin UI exchange, so a row can be inspected/edited as-is.

type overrideRuleJSON struct {
	Tag      string       `json:"tag"`
	Override overrideJSON `json:"override"`
}

type overrideJSON struct {
	LeadTimeDays *int `json:"leadTimeDays,omitempty"`
	RangeDays    *int `json:"rangeDays,omitempty"`

	ShowDate      *bool `json:"showDate,omitempty"`
	ShowTime      *bool `json:"showTime,omitempty"`
	ShowPlacement *bool `json:"showPlacement,omitempty"`

	RequireDate *bool `json:"requireDate,omitempty"`
	RequireTime *bool `json:"requireTime,omitempty"`

	NoticeText    *string  `json:"noticeText,omitempty"`
	TimeSlots     []string `json:"timeSlots,omitempty"`
	CarrierPreset *string  `json:"carrierPreset,omitempty"`
}

// safeStringArray decodes a JSON string-array column. Malformed content
// yields an empty slice, never an error: bad configuration must not take the
// read path down.
func safeStringArray(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, s := range arr {
		out = append(out, s)
	}
	return out
}

// safeOverrideRules decodes the tag_overrides_json column, dropping entries
// that do not decode into a rule object.
func safeOverrideRules(raw string) []domain.TagOverrideRule {
	if raw == "" {
		return []domain.TagOverrideRule{}
	}
	var wire []overrideRuleJSON
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return []domain.TagOverrideRule{}
	}

	rules := make([]domain.TagOverrideRule, 0, len(wire))
	for _, w := range wire {
		rules = append(rules, domain.TagOverrideRule{
			Tag: w.Tag,
			Override: domain.SettingsOverride{
				LeadTimeDays:  w.Override.LeadTimeDays,
				RangeDays:     w.Override.RangeDays,
				ShowDate:      w.Override.ShowDate,
				ShowTime:      w.Override.ShowTime,
				ShowPlacement: w.Override.ShowPlacement,
				RequireDate:   w.Override.RequireDate,
				RequireTime:   w.Override.RequireTime,
				NoticeText:    w.Override.NoticeText,
				TimeSlots:     w.Override.TimeSlots,
				CarrierPreset: w.Override.CarrierPreset,
			},
		})
	}
	return rules
}

func encodeStringArray(arr []string) (string, error) {
	if arr == nil {
		arr = []string{}
	}
	b, err := json.Marshal(arr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeOverrideRules(rules []domain.TagOverrideRule) (string, error) {
	wire := make([]overrideRuleJSON, 0, len(rules))
	for _, r := range rules {
		wire = append(wire, overrideRuleJSON{
			Tag: r.Tag,
			Override: overrideJSON{
				LeadTimeDays:  r.Override.LeadTimeDays,
				RangeDays:     r.Override.RangeDays,
				ShowDate:      r.Override.ShowDate,
				ShowTime:      r.Override.ShowTime,
				ShowPlacement: r.Override.ShowPlacement,
				RequireDate:   r.Override.RequireDate,
				RequireTime:   r.Override.RequireTime,
				NoticeText:    r.Override.NoticeText,
				TimeSlots:     r.Override.TimeSlots,
				CarrierPreset: r.Override.CarrierPreset,
			},
		})
	}
	b, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
