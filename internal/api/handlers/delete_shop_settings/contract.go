package delete_shop_settings

import "context"

type SettingsService interface {
	Delete(ctx context.Context, shop string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
