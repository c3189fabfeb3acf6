package get_proxy_settings

import (
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	resolvePolicy "github.com/m04kA/SMC-DeliveryService/internal/usecase/resolve_policy"
)

// SettingsResponse bootstrap payload витрины: базовые настройки магазина
// плюс вычисленное окно дат
type SettingsResponse struct {
	Shop string `json:"shop"`

	LeadTimeDays int    `json:"leadTimeDays"`
	RangeDays    int    `json:"rangeDays"`
	CutoffTime   string `json:"cutoffTime"`
	NoticeText   string `json:"noticeText"`

	TimeSlots []string `json:"timeSlots"`

	ShowDate      bool `json:"showDate"`
	ShowTime      bool `json:"showTime"`
	ShowPlacement bool `json:"showPlacement"`
	RequireDate   bool `json:"requireDate"`
	RequireTime   bool `json:"requireTime"`

	AttrDateName      string `json:"attrDateName"`
	AttrTimeName      string `json:"attrTimeName"`
	AttrPlacementName string `json:"attrPlacementName"`

	Computed ComputedWindow `json:"computed"`
}

// ComputedWindow вычисленное на сервере окно дат
type ComputedWindow struct {
	MinDate       string   `json:"minDate"`
	MaxDate       string   `json:"maxDate"`
	DisabledDates []string `json:"disabledDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(shop string, resp *resolvePolicy.Response) *SettingsResponse {
	s := resp.Effective.Settings

	cutoff := s.CutoffTime
	if cutoff == domain.CutoffNone {
		cutoff = ""
	}

	disabled := resp.DisabledDates
	if disabled == nil {
		disabled = []string{}
	}

	slots := s.TimeSlots
	if slots == nil {
		slots = []string{}
	}

	return &SettingsResponse{
		Shop:              shop,
		LeadTimeDays:      s.LeadTimeDays,
		RangeDays:         s.RangeDays,
		CutoffTime:        cutoff,
		NoticeText:        s.NoticeText,
		TimeSlots:         slots,
		ShowDate:          s.Show.Date,
		ShowTime:          s.Show.Time,
		ShowPlacement:     s.Show.Placement,
		RequireDate:       s.Required.Date,
		RequireTime:       s.Required.Time,
		AttrDateName:      s.AttrNames.Date,
		AttrTimeName:      s.AttrNames.Time,
		AttrPlacementName: s.AttrNames.Placement,
		Computed: ComputedWindow{
			MinDate:       resp.Window.MinYMD(),
			MaxDate:       resp.Window.MaxYMD(),
			DisabledDates: disabled,
		},
	}
}
