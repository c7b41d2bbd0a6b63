package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

const (
	msgUserNotResolved      = "не удалось определить пользователя"
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "нет прав на отмену этого бронирования"
	msgPastReservation      = "бронирование на прошедшую дату нельзя отменить"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{reservationId} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	err = h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{reservationId} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{reservationId} - Access denied: user_id=%s, reservation_id=%d",
				userID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrPastReservation):
			h.logger.Warn("DELETE /reservations/{reservationId} - Past reservation: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgPastReservation)

		default:
			h.logger.Error("DELETE /reservations/{reservationId} - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{reservationId} - Cancelled: reservation_id=%d, user_id=%s",
		reservationID, userID)
	w.WriteHeader(http.StatusNoContent)
}
