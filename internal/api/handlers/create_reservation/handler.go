package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUserNotResolved     = "не удалось определить пользователя"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность, ожидается AM, PM или FULL"
	msgDeskNotFound        = "стол не найден"
	msgDateInPast          = "дата бронирования уже прошла"
	msgWeekendDate         = "бронирование на выходные дни недоступно"
	msgDateOutsideWindow   = "дата за пределами окна бронирования"
	msgDeskAlreadyReserved = "стол уже забронирован на эту дату"
	msgUserDayTaken        = "у вас уже есть бронирование на эту дату"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, desk_id=%d", userID, req.DeskID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrDeskNotFound):
			h.logger.Warn("POST /reservations - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: user_id=%s, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrWeekendDate):
			h.logger.Warn("POST /reservations - Weekend date: user_id=%s, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgWeekendDate)

		case errors.Is(err, createReservation.ErrDateOutsideWindow):
			h.logger.Warn("POST /reservations - Date outside window: user_id=%s, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, createReservation.ErrDeskAlreadyReserved):
			h.logger.Warn("POST /reservations - Desk already reserved: desk_id=%d, date=%s", req.DeskID, req.BookingDate)
			handlers.RespondConflict(w, msgDeskAlreadyReserved)

		case errors.Is(err, createReservation.ErrUserDayTaken):
			h.logger.Warn("POST /reservations - User day taken: user_id=%s, date=%s", userID, req.BookingDate)
			handlers.RespondConflict(w, msgUserDayTaken)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, desk_id=%d, error=%v",
				userID, req.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%s, desk_id=%d",
		result.ID, userID, req.DeskID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
