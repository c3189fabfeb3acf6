package get_proxy_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	resolvePolicy "github.com/m04kA/SMC-DeliveryService/internal/usecase/resolve_policy"
)

const (
	msgMissingShop = "параметр shop обязателен"
	msgConfigFault = "конфигурация магазина не позволяет вычислить даты доставки"
)

type Handler struct {
	useCase ResolvePolicyUseCase
	logger  Logger
}

func NewHandler(useCase ResolvePolicyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /proxy/delivery/settings
// Query params: shop (required)
// Базовые настройки без учета корзины: политика вычисляется с пустым
// набором тегов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		h.logger.Warn("GET /proxy/delivery/settings - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolvePolicy.Request{Shop: shop})
	if err != nil {
		switch {
		case errors.Is(err, resolvePolicy.ErrInvalidInput):
			h.logger.Warn("GET /proxy/delivery/settings - Invalid input: shop=%s, error=%v", shop, err)
			handlers.RespondBadRequest(w, msgMissingShop)

		case errors.Is(err, resolvePolicy.ErrConfigFault):
			h.logger.Error("GET /proxy/delivery/settings - Config fault: shop=%s, error=%v", shop, err)
			handlers.RespondNoStore(w, http.StatusInternalServerError, map[string]interface{}{
				"ok":     false,
				"reason": "config_fault",
				"error":  msgConfigFault,
			})

		default:
			h.logger.Error("GET /proxy/delivery/settings - Failed to get settings: shop=%s, error=%v", shop, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /proxy/delivery/settings - Settings retrieved: shop=%s", shop)
	handlers.RespondNoStore(w, http.StatusOK, FromUseCaseResponse(shop, result))
}
