package settings

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек доставки
type SettingsRepository interface {
	GetByShop(ctx context.Context, shop string) (*domain.ShopDeliverySettings, error)
	GetOrDefault(ctx context.Context, shop string) (*domain.ShopDeliverySettings, error)
	Upsert(ctx context.Context, s *domain.ShopDeliverySettings) (*domain.ShopDeliverySettings, error)
	Delete(ctx context.Context, shop string) error
}

// TxManager интерфейс transaction manager для read-modify-write обновлений
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
