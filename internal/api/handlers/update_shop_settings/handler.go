package update_shop_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-DeliveryService/internal/service/settings"
	"github.com/m04kA/SMC-DeliveryService/internal/service/settings/models"
)

const (
	msgMissingShop        = "домен магазина обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PUT /api/v1/shops/{shop}/settings
// Частичное обновление: обновляются только переданные поля.
// Невалидная конфигурация (пустой тег правила, дубль тега, неизвестный
// пресет перевозчика и т.п.) отклоняется с 400 и текстом ошибки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop := mux.Vars(r)["shop"]
	if shop == "" {
		h.logger.Warn("PUT /shops/{shop}/settings - Missing shop")
		handlers.RespondBadRequest(w, msgMissingShop)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/{shop}/settings - Invalid request body: shop=%s, error=%v", shop, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), shop, &req)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PUT /shops/{shop}/settings - Invalid data: shop=%s, error=%v", shop, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("PUT /shops/{shop}/settings - Failed to update settings: shop=%s, error=%v", shop, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /shops/{shop}/settings - Settings updated: shop=%s", shop)
	handlers.RespondJSON(w, http.StatusOK, result)
}
