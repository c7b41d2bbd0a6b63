package reconcile_bookings

import (
	"context"

	reconcileBookings "github.com/m04kA/SMC-WorkplaceService/internal/usecase/reconcile_bookings"
)

type ReconcileBookingsUseCase interface {
	Execute(ctx context.Context, req *reconcileBookings.Request) (*reconcileBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
