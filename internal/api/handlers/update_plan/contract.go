package update_plan

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans/models"
)

type PlanService interface {
	UpdatePlan(ctx context.Context, planID int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
