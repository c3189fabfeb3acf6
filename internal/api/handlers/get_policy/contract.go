package get_policy

import (
	"context"

	resolvePolicy "github.com/m04kA/SMC-DeliveryService/internal/usecase/resolve_policy"
)

type ResolvePolicyUseCase interface {
	Execute(ctx context.Context, req *resolvePolicy.Request) (*resolvePolicy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
