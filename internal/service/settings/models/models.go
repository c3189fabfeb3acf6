package models

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Request модели

// OverrideInput частичное переопределение настроек для одного тега.
// Nil поля оставляют базовое значение без изменений.
type OverrideInput struct {
	LeadTimeDays  *int     `json:"leadTimeDays,omitempty"`
	RangeDays     *int     `json:"rangeDays,omitempty"`
	ShowDate      *bool    `json:"showDate,omitempty"`
	ShowTime      *bool    `json:"showTime,omitempty"`
	ShowPlacement *bool    `json:"showPlacement,omitempty"`
	RequireDate   *bool    `json:"requireDate,omitempty"`
	RequireTime   *bool    `json:"requireTime,omitempty"`
	NoticeText    *string  `json:"noticeText,omitempty"`
	TimeSlots     []string `json:"timeSlots,omitempty"`
	CarrierPreset *string  `json:"carrierPreset,omitempty"`
}

// TagOverrideRuleInput правило переопределения: тег + частичные настройки
type TagOverrideRuleInput struct {
	Tag      string        `json:"tag"`
	Override OverrideInput `json:"override"`
}

// UpdateSettingsRequest запрос на обновление настроек доставки магазина
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	LeadTimeDays  *int    `json:"leadTimeDays,omitempty"`
	RangeDays     *int    `json:"rangeDays,omitempty"`
	CutoffTime    *string `json:"cutoffTime,omitempty"`
	NoticeText    *string `json:"noticeText,omitempty"`
	CarrierPreset *string `json:"carrierPreset,omitempty"`

	TimeSlots     []string `json:"timeSlots,omitempty"`
	Holidays      []string `json:"holidays,omitempty"`
	BlackoutDates []string `json:"blackoutDates,omitempty"`

	ShowDate      *bool `json:"showDate,omitempty"`
	ShowTime      *bool `json:"showTime,omitempty"`
	ShowPlacement *bool `json:"showPlacement,omitempty"`
	RequireDate   *bool `json:"requireDate,omitempty"`
	RequireTime   *bool `json:"requireTime,omitempty"`

	AttrDateName      *string `json:"attrDateName,omitempty"`
	AttrTimeName      *string `json:"attrTimeName,omitempty"`
	AttrPlacementName *string `json:"attrPlacementName,omitempty"`

	DenyTags     []string               `json:"denyTags,omitempty"`
	TagOverrides []TagOverrideRuleInput `json:"tagOverrides,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками доставки магазина
type SettingsResponse struct {
	Shop          string `json:"shop"`
	LeadTimeDays  int    `json:"leadTimeDays"`
	RangeDays     int    `json:"rangeDays"`
	CutoffTime    string `json:"cutoffTime"`
	NoticeText    string `json:"noticeText"`
	CarrierPreset string `json:"carrierPreset"`

	TimeSlots     []string `json:"timeSlots"`
	Holidays      []string `json:"holidays"`
	BlackoutDates []string `json:"blackoutDates"`

	ShowDate      bool `json:"showDate"`
	ShowTime      bool `json:"showTime"`
	ShowPlacement bool `json:"showPlacement"`
	RequireDate   bool `json:"requireDate"`
	RequireTime   bool `json:"requireTime"`

	AttrDateName      string `json:"attrDateName"`
	AttrTimeName      string `json:"attrTimeName"`
	AttrPlacementName string `json:"attrPlacementName"`

	DenyTags     []string               `json:"denyTags"`
	TagOverrides []TagOverrideRuleInput `json:"tagOverrides"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ShopDeliverySettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		Shop:              s.Shop,
		LeadTimeDays:      s.LeadTimeDays,
		RangeDays:         s.RangeDays,
		CutoffTime:        s.CutoffTime,
		NoticeText:        s.NoticeText,
		CarrierPreset:     s.CarrierPreset,
		TimeSlots:         emptyIfNil(s.TimeSlots),
		Holidays:          emptyIfNil(s.Holidays),
		BlackoutDates:     emptyIfNil(s.BlackoutDates),
		ShowDate:          s.Show.Date,
		ShowTime:          s.Show.Time,
		ShowPlacement:     s.Show.Placement,
		RequireDate:       s.Required.Date,
		RequireTime:       s.Required.Time,
		AttrDateName:      s.AttrNames.Date,
		AttrTimeName:      s.AttrNames.Time,
		AttrPlacementName: s.AttrNames.Placement,
		DenyTags:          emptyIfNil(s.DenyTags),
		TagOverrides:      rulesFromDomain(s.TagOverrides),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.ShopDeliverySettings) {
	if r.LeadTimeDays != nil {
		s.LeadTimeDays = *r.LeadTimeDays
	}
	if r.RangeDays != nil {
		s.RangeDays = *r.RangeDays
	}
	if r.CutoffTime != nil {
		s.CutoffTime = *r.CutoffTime
	}
	if r.NoticeText != nil {
		s.NoticeText = *r.NoticeText
	}
	if r.CarrierPreset != nil {
		s.CarrierPreset = *r.CarrierPreset
	}
	if r.TimeSlots != nil {
		s.TimeSlots = r.TimeSlots
	}
	if r.Holidays != nil {
		s.Holidays = r.Holidays
	}
	if r.BlackoutDates != nil {
		s.BlackoutDates = r.BlackoutDates
	}
	if r.ShowDate != nil {
		s.Show.Date = *r.ShowDate
	}
	if r.ShowTime != nil {
		s.Show.Time = *r.ShowTime
	}
	if r.ShowPlacement != nil {
		s.Show.Placement = *r.ShowPlacement
	}
	if r.RequireDate != nil {
		s.Required.Date = *r.RequireDate
	}
	if r.RequireTime != nil {
		s.Required.Time = *r.RequireTime
	}
	if r.AttrDateName != nil {
		s.AttrNames.Date = *r.AttrDateName
	}
	if r.AttrTimeName != nil {
		s.AttrNames.Time = *r.AttrTimeName
	}
	if r.AttrPlacementName != nil {
		s.AttrNames.Placement = *r.AttrPlacementName
	}
	if r.DenyTags != nil {
		s.DenyTags = r.DenyTags
	}
	if r.TagOverrides != nil {
		s.TagOverrides = rulesToDomain(r.TagOverrides)
	}
}

func rulesToDomain(rules []TagOverrideRuleInput) []domain.TagOverrideRule {
	out := make([]domain.TagOverrideRule, len(rules))
	for i, r := range rules {
		out[i] = domain.TagOverrideRule{
			Tag: r.Tag,
			Override: domain.SettingsOverride{
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
		}
	}
	return out
}

func rulesFromDomain(rules []domain.TagOverrideRule) []TagOverrideRuleInput {
	out := make([]TagOverrideRuleInput, len(rules))
	for i, r := range rules {
		out[i] = TagOverrideRuleInput{
			Tag: r.Tag,
			Override: OverrideInput{
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
		}
	}
	return out
}

func emptyIfNil(arr []string) []string {
	if arr == nil {
		return []string{}
	}
	return arr
}
