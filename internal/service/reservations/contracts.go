package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateDuration(ctx context.Context, id int64, duration domain.Duration) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeServiceClient интерфейс клиента каталога сотрудников
type EmployeeServiceClient interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
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
