package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSettingsNotFound возвращается при удалении настроек магазина,
	// у которого нет сохранённой строки
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
