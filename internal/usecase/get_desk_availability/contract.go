package get_desk_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/employeeservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// PlanRepository интерфейс репозитория плана (проверка существования стола)
type PlanRepository interface {
	GetDeskByID(ctx context.Context, id int64) (*domain.Desk, error)
}

// EmployeeServiceClient интерфейс клиента EmployeeService
type EmployeeServiceClient interface {
	GetEmployeeWithGracefulDegradation(ctx context.Context, userID string) (*employeeservice.Employee, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
