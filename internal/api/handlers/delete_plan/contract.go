package delete_plan

import "context"

type PlanService interface {
	DeletePlan(ctx context.Context, planID int64, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
