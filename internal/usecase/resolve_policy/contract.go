package resolve_policy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек доставки
type SettingsRepository interface {
	// GetOrDefault возвращает настройки магазина или настройки по умолчанию
	GetOrDefault(ctx context.Context, shop string) (*domain.ShopDeliverySettings, error)
}

// TagsService интерфейс сервиса тегов продуктов корзины
type TagsService interface {
	CartProductTags(ctx context.Context, shop string, productIDs []int64) map[string]struct{}
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
