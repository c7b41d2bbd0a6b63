package sync_plan

import (
	"context"

	syncPlan "github.com/m04kA/SMC-WorkplaceService/internal/usecase/sync_plan"
)

type SyncPlanUseCase interface {
	Execute(ctx context.Context, req *syncPlan.Request) (*syncPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
