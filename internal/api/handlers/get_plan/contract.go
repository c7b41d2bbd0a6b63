package get_plan

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans/models"
)

type PlanService interface {
	GetPlan(ctx context.Context) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
