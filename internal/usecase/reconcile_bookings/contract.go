package reconcile_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	createReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateDuration(ctx context.Context, id int64, duration domain.Duration) error
	Delete(ctx context.Context, id int64) error
}

// ReservationCreator интерфейс создания одного бронирования.
// Каждый create сессии - независимая операция со своей транзакцией
// и своим исходом; ошибка одного create не трогает соседние операции.
type ReservationCreator interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
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
