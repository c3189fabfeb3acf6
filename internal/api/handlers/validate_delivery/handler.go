package validate_delivery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	validateSelection "github.com/m04kA/SMC-DeliveryService/internal/usecase/validate_selection"
)

const (
	msgMissingShop = "параметр shop обязателен"
	msgConfigFault = "конфигурация магазина не позволяет вычислить даты доставки"
)

type Handler struct {
	useCase ValidateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/validate
// Query params: shop (required)
// Body: {delivery_date, delivery_time, product_ids?}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		h.logger.Warn("POST /delivery/validate - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/validate - Invalid request body: shop=%s, error=%v", shop, err)
		handlers.RespondJSON(w, http.StatusBadRequest, &ValidateResponse{
			OK:      false,
			Reason:  "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(shop))
	if err != nil {
		switch {
		case errors.Is(err, validateSelection.ErrInvalidInput):
			h.logger.Warn("POST /delivery/validate - Invalid input: shop=%s, error=%v", shop, err)
			handlers.RespondBadRequest(w, msgMissingShop)

		case errors.Is(err, validateSelection.ErrConfigFault):
			h.logger.Error("POST /delivery/validate - Config fault: shop=%s, error=%v", shop, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"ok":     false,
				"reason": "config_fault",
				"error":  msgConfigFault,
			})

		default:
			h.logger.Error("POST /delivery/validate - Validation failed: shop=%s, error=%v", shop, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.OK {
		h.logger.Info("POST /delivery/validate - Rejected: shop=%s, reason=%s", shop, result.Reason)
		handlers.RespondJSON(w, http.StatusBadRequest, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /delivery/validate - Accepted: shop=%s", shop)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
