package validate_delivery

import (
	"context"

	validateSelection "github.com/m04kA/SMC-DeliveryService/internal/usecase/validate_selection"
)

type ValidateSelectionUseCase interface {
	Execute(ctx context.Context, req *validateSelection.Request) (*validateSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
