package productcatalog

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("productcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе каталога
	ErrInvalidResponse = errors.New("productcatalog client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что каталог недоступен и политику нужно вычислять без тегов
	ErrServiceDegraded = errors.New("productcatalog unavailable: graceful degradation applied")
)
