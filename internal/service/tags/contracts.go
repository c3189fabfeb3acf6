package tags

import "context"

// TokenRepository интерфейс репозитория offline токенов
type TokenRepository interface {
	GetOfflineToken(ctx context.Context, shop string) (string, error)
}

// CatalogClient интерфейс клиента каталога продуктов
type CatalogClient interface {
	FetchProductTagsWithGracefulDegradation(ctx context.Context, shop, accessToken string, productIDs []int64) (map[string]struct{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
