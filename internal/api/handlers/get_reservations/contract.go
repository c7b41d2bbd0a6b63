package get_reservations

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

type ReservationService interface {
	GetAllReservations(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
