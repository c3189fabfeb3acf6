package delete_shop_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-DeliveryService/internal/service/settings"
)

const (
	msgMissingShop = "домен магазина обязателен"
	msgNotFound    = "настройки магазина не найдены"
)

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

// Handle DELETE /api/v1/shops/{shop}/settings
// Сбрасывает магазин к настройкам по умолчанию: строка удаляется,
// следующее чтение вернёт дефолты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := mux.Vars(r)["shop"]
	if shop == "" {
		h.logger.Warn("DELETE /shops/{shop}/settings - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	if err := h.service.Delete(r.Context(), shop); err != nil {
		if errors.Is(err, settingsService.ErrSettingsNotFound) {
			h.logger.Warn("DELETE /shops/{shop}/settings - Settings not found: shop=%s", shop)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /shops/{shop}/settings - Failed to delete settings: shop=%s, error=%v", shop, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /shops/{shop}/settings - Settings deleted: shop=%s", shop)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
