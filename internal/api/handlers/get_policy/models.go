package get_policy

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	resolvePolicy "github.com/m04kA/SMC-DeliveryService/internal/usecase/resolve_policy"
)

// PolicyResponse HTTP response model
type PolicyResponse struct {
	OK       bool              `json:"ok"`
	Settings EffectiveSettings `json:"settings"`
}

// EffectiveSettings действующие настройки корзины после применения правил тегов
type EffectiveSettings struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`

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

	// Вычисленное окно; пусто при enabled=false
	MinDate       string   `json:"minDate,omitempty"`
	MaxDate       string   `json:"maxDate,omitempty"`
	DisabledDates []string `json:"disabledDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolvePolicy.Response) *PolicyResponse {
	s := resp.Effective.Settings

	out := EffectiveSettings{
		Enabled:           !resp.Effective.Policy.Disabled,
		Reason:            resp.Effective.Policy.Reason,
		LeadTimeDays:      s.LeadTimeDays,
		RangeDays:         s.RangeDays,
		CutoffTime:        cutoffForPayload(s.CutoffTime),
		NoticeText:        s.NoticeText,
		TimeSlots:         emptyIfNil(s.TimeSlots),
		ShowDate:          s.Show.Date,
		ShowTime:          s.Show.Time,
		ShowPlacement:     s.Show.Placement,
		RequireDate:       s.Required.Date,
		RequireTime:       s.Required.Time,
		AttrDateName:      s.AttrNames.Date,
		AttrTimeName:      s.AttrNames.Time,
		AttrPlacementName: s.AttrNames.Placement,
		DisabledDates:     []string{},
	}

	if !resp.Effective.Policy.Disabled {
		out.MinDate = resp.Window.MinYMD()
		out.MaxDate = resp.Window.MaxYMD()
		out.DisabledDates = emptyIfNil(resp.DisabledDates)
	}

	return &PolicyResponse{OK: true, Settings: out}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// product_ids: список ID через запятую; нечисловые элементы отбрасываются.
func ToUseCaseRequest(shop, productIDsParam string) *resolvePolicy.Request {
	var ids []int64
	for _, part := range strings.Split(productIDsParam, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	return &resolvePolicy.Request{Shop: shop, ProductIDs: ids}
}

func cutoffForPayload(cutoff string) string {
	if cutoff == domain.CutoffNone {
		return ""
	}
	return cutoff
}

func emptyIfNil(arr []string) []string {
	if arr == nil {
		return []string{}
	}
	return arr
}
