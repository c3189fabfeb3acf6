package get_shop_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
)

const msgMissingShop = "домен магазина обязателен"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shop}/settings
// Для магазина без сохранённых настроек возвращаются настройки по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := mux.Vars(r)["shop"]
	if shop == "" {
		h.logger.Warn("GET /shops/{shop}/settings - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	result, err := h.service.Get(r.Context(), shop)
	if err != nil {
		h.logger.Error("GET /shops/{shop}/settings - Failed to get settings: shop=%s, error=%v", shop, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{shop}/settings - Settings retrieved: shop=%s", shop)
	handlers.RespondJSON(w, http.StatusOK, result)
}
