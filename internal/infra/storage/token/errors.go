package token

import "errors"

var (
	// ErrTokenNotFound возвращается, когда offline токен магазина отсутствует
	ErrTokenNotFound = errors.New("token.repository: token not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("token.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("token.repository: failed to execute query")
)
