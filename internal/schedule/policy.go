package schedule

import (
	"strings"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// TagSet builds a trimmed, deduplicated set from raw tag strings.
func TagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// UniqueStrings trims, drops blanks and deduplicates preserving first occurrence.
func UniqueStrings(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ResolvePolicy applies the shop's tag policy to the set of tags present on
// the cart's products.
//
// Deny is absolute: any deny tag present on the cart disables delivery-date
// selection before a single override rule is looked at. Otherwise override
// rules are scanned in list order and the first matching rule is applied —
// a field-level partial merge, remaining rules are never consulted.
// Malformed rules (blank tag) are skipped rather than fatal; the settings
// service rejects them at write time but the resolver does not trust its
// input.
func ResolvePolicy(base domain.ShopDeliverySettings, cartTags map[string]struct{}) domain.EffectiveSettings {
	for _, raw := range base.DenyTags {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := cartTags[tag]; ok {
			denied := base
			denied.NormalizeRequired()
			return domain.EffectiveSettings{
				Settings: denied,
				Policy:   domain.PolicyState{Disabled: true, Reason: domain.PolicyReasonDenyTag},
			}
		}
	}

	effective := base
	for _, rule := range base.TagOverrides {
		tag := strings.TrimSpace(rule.Tag)
		if tag == "" {
			continue
		}
		if _, ok := cartTags[tag]; !ok {
			continue
		}
		effective = applyOverride(effective, rule.Override)
		break
	}

	effective.NormalizeRequired()
	return domain.EffectiveSettings{
		Settings: effective,
		Policy:   domain.PolicyState{Disabled: false},
	}
}

// applyOverride merges the non-nil fields of ov onto base.
// Placement can never become required, whatever the override says.
func applyOverride(base domain.ShopDeliverySettings, ov domain.SettingsOverride) domain.ShopDeliverySettings {
	next := base

	if ov.LeadTimeDays != nil {
		next.LeadTimeDays = *ov.LeadTimeDays
	}
	if ov.RangeDays != nil {
		next.RangeDays = *ov.RangeDays
	}

	if ov.ShowDate != nil {
		next.Show.Date = *ov.ShowDate
	}
	if ov.ShowTime != nil {
		next.Show.Time = *ov.ShowTime
	}
	if ov.ShowPlacement != nil {
		next.Show.Placement = *ov.ShowPlacement
	}

	if ov.RequireDate != nil {
		next.Required.Date = *ov.RequireDate
	}
	if ov.RequireTime != nil {
		next.Required.Time = *ov.RequireTime
	}
	next.Required.Placement = false

	if ov.NoticeText != nil {
		next.NoticeText = *ov.NoticeText
	}
	if ov.TimeSlots != nil {
		next.TimeSlots = UniqueStrings(ov.TimeSlots)
	}
	if ov.CarrierPreset != nil {
		next.CarrierPreset = *ov.CarrierPreset
	}

	return next
}
