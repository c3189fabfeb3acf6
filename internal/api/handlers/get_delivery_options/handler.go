package get_delivery_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getDeliveryOptions "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_options"
)

const (
	msgMissingShop = "параметр shop обязателен"
	msgConfigFault = "конфигурация магазина не позволяет вычислить даты доставки"
)

type Handler struct {
	useCase GetDeliveryOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetDeliveryOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/delivery/options
// Query params: shop (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		h.logger.Warn("GET /delivery/options - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDeliveryOptions.Request{Shop: shop})
	if err != nil {
		switch {
		case errors.Is(err, getDeliveryOptions.ErrInvalidInput):
			h.logger.Warn("GET /delivery/options - Invalid input: shop=%s, error=%v", shop, err)
			handlers.RespondBadRequest(w, msgMissingShop)

		case errors.Is(err, getDeliveryOptions.ErrConfigFault):
			h.logger.Error("GET /delivery/options - Config fault: shop=%s, error=%v", shop, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"ok":     false,
				"reason": "config_fault",
				"error":  msgConfigFault,
			})

		default:
			h.logger.Error("GET /delivery/options - Failed to get options: shop=%s, error=%v", shop, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /delivery/options - Options retrieved: shop=%s, window=[%s, %s]",
		shop, result.MinDate, result.MaxDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
