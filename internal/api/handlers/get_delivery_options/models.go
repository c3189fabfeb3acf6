package get_delivery_options

import (
	getDeliveryOptions "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_options"
)

// OptionsResponse HTTP response model для календаря витрины
type OptionsResponse struct {
	MinDate       string   `json:"minDate"`
	MaxDate       string   `json:"maxDate"`
	DisabledDates []string `json:"disabledDates"`
	TimeSlots     []string `json:"timeSlots"`
	CutoffTime    string   `json:"cutoffTime"`
	LeadTimeDays  int      `json:"leadTimeDays"`
	RangeDays     int      `json:"rangeDays"`
	NoticeText    string   `json:"noticeText"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeliveryOptions.Response) *OptionsResponse {
	disabled := resp.DisabledDates
	if disabled == nil {
		disabled = []string{}
	}
	slots := resp.TimeSlots
	if slots == nil {
		slots = []string{}
	}

	return &OptionsResponse{
		MinDate:       resp.MinDate,
		MaxDate:       resp.MaxDate,
		DisabledDates: disabled,
		TimeSlots:     slots,
		CutoffTime:    resp.CutoffTime,
		LeadTimeDays:  resp.LeadTimeDays,
		RangeDays:     resp.RangeDays,
		NoticeText:    resp.NoticeText,
	}
}
