package plans

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// PlanRepository интерфейс репозитория плана и его объектов
type PlanRepository interface {
	CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetPlan(ctx context.Context) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, p *domain.Plan) error
	DeletePlan(ctx context.Context, id int64) error

	ListDesksByPlan(ctx context.Context, planID int64) ([]*domain.Desk, error)
	ListWallsByPlan(ctx context.Context, planID int64) ([]*domain.Wall, error)
}

// EmployeeServiceClient интерфейс клиента каталога сотрудников
type EmployeeServiceClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
