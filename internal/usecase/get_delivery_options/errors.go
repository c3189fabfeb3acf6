package get_delivery_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConfigFault возвращается, когда конфигурация магазина не позволяет
	// вычислить ни одну рабочую дату
	ErrConfigFault = errors.New("shop configuration fault")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
