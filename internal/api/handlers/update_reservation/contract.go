package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

type ReservationService interface {
	UpdateDuration(ctx context.Context, reservationID int64, req *models.UpdateDurationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
