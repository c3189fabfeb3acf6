package validate_delivery

import (
	validateSelection "github.com/m04kA/SMC-DeliveryService/internal/usecase/validate_selection"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	DeliveryDate string  `json:"delivery_date"`
	DeliveryTime string  `json:"delivery_time"`
	ProductIDs   []int64 `json:"product_ids,omitempty"`
}

// ValidateResponse HTTP response model
type ValidateResponse struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *ValidateRequest) ToUseCaseRequest(shop string) *validateSelection.Request {
	return &validateSelection.Request{
		Shop:         shop,
		DeliveryDate: r.DeliveryDate,
		DeliveryTime: r.DeliveryTime,
		ProductIDs:   r.ProductIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSelection.Response) *ValidateResponse {
	return &ValidateResponse{
		OK:      resp.OK,
		Reason:  resp.Reason,
		Message: resp.Message,
		MinDate: resp.MinDate,
		MaxDate: resp.MaxDate,
	}
}
