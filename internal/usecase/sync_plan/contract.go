package sync_plan

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// PlanRepository интерфейс репозитория плана и его объектов
type PlanRepository interface {
	GetPlan(ctx context.Context) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, p *domain.Plan) error

	ListDesksByPlan(ctx context.Context, planID int64) ([]*domain.Desk, error)
	CreateDesk(ctx context.Context, d *domain.Desk) (*domain.Desk, error)
	UpdateDesk(ctx context.Context, d *domain.Desk) error
	DeleteDesk(ctx context.Context, id int64) error

	ListWallsByPlan(ctx context.Context, planID int64) ([]*domain.Wall, error)
	CreateWall(ctx context.Context, w *domain.Wall) (*domain.Wall, error)
	UpdateWall(ctx context.Context, w *domain.Wall) error
	DeleteWall(ctx context.Context, id int64) error
}

// EmployeeServiceClient интерфейс клиента каталога сотрудников
type EmployeeServiceClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
