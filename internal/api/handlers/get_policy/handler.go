package get_policy

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

// Handle GET /proxy/delivery/policy
// Query params: shop (required), product_ids (optional, comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		h.logger.Warn("GET /proxy/delivery/policy - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	req := ToUseCaseRequest(shop, r.URL.Query().Get("product_ids"))

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolvePolicy.ErrInvalidInput):
			h.logger.Warn("GET /proxy/delivery/policy - Invalid input: shop=%s, error=%v", shop, err)
			handlers.RespondBadRequest(w, msgMissingShop)

		case errors.Is(err, resolvePolicy.ErrConfigFault):
			h.logger.Error("GET /proxy/delivery/policy - Config fault: shop=%s, error=%v", shop, err)
			handlers.RespondNoStore(w, http.StatusInternalServerError, map[string]interface{}{
				"ok":     false,
				"reason": "config_fault",
				"error":  msgConfigFault,
			})

		default:
			h.logger.Error("GET /proxy/delivery/policy - Failed to resolve policy: shop=%s, error=%v", shop, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /proxy/delivery/policy - Policy resolved: shop=%s, enabled=%t",
		shop, !result.Effective.Policy.Disabled)
	handlers.RespondNoStore(w, http.StatusOK, FromUseCaseResponse(result))
}
