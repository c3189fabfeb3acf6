package update_shop_settings

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, shop string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
