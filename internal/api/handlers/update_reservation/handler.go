package update_reservation

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgInvalidDuration      = "некорректная длительность, ожидается AM, PM или FULL"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "нет прав на изменение этого бронирования"
	msgPastReservation      = "бронирование на прошедшую дату нельзя изменить"
)

// UpdateDurationRequest HTTP request model.
// Длительность - единственное изменяемое поле бронирования.
type UpdateDurationRequest struct {
	Duration string `json:"duration"` // AM / PM / FULL
}

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

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{reservationId} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateDurationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{reservationId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDuration(r.Context(), reservationID, &models.UpdateDurationRequest{
		UserID:   userID,
		Duration: req.Duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{reservationId} - Invalid duration: reservation_id=%d, duration=%s",
				reservationID, req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{reservationId} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{reservationId} - Access denied: user_id=%s, reservation_id=%d",
				userID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrPastReservation):
			h.logger.Warn("PATCH /reservations/{reservationId} - Past reservation: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgPastReservation)

		default:
			h.logger.Error("PATCH /reservations/{reservationId} - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{reservationId} - Updated: reservation_id=%d, duration=%s",
		reservationID, result.Duration)
	handlers.RespondJSON(w, http.StatusOK, result)
}
