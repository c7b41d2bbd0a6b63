package reconcile_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	reconcileBookings "github.com/m04kA/SMC-WorkplaceService/internal/usecase/reconcile_bookings"
)

const (
	msgUserNotResolved    = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDeskID      = "некорректный идентификатор стола"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateOutsideWindow  = "выбранная дата за пределами окна бронирования"
	msgSingleDayViolation = "выбор содержит даты за пределами просматриваемого дня"
	msgCancelAllConfirm   = "отмена всех бронирований требует явного подтверждения"
	msgInvalidInput       = "некорректные параметры сверки"
)

type Handler struct {
	useCase ReconcileBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ReconcileBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/desks/{deskId}/reconcile
// Ответ всегда 200 с явным полем outcome: частичный успех операций
// не маскируется ни под полный успех, ни под ошибку HTTP.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	deskID, err := strconv.ParseInt(mux.Vars(r)["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /desks/{deskId}/reconcile - Invalid desk id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	var req ReconcileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desks/{deskId}/reconcile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, deskID)
	if err != nil {
		h.logger.Warn("POST /desks/{deskId}/reconcile - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reconcileBookings.ErrInvalidDate):
			h.logger.Warn("POST /desks/{deskId}/reconcile - Date outside window: user_id=%s, desk_id=%d", userID, deskID)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, reconcileBookings.ErrSingleDayViolation):
			h.logger.Warn("POST /desks/{deskId}/reconcile - Single day violation: user_id=%s, desk_id=%d", userID, deskID)
			handlers.RespondBadRequest(w, msgSingleDayViolation)

		case errors.Is(err, reconcileBookings.ErrCancelAllNotConfirmed):
			h.logger.Warn("POST /desks/{deskId}/reconcile - Cancel-all not confirmed: user_id=%s, desk_id=%d", userID, deskID)
			handlers.RespondConflict(w, msgCancelAllConfirm)

		case errors.Is(err, reconcileBookings.ErrInvalidInput):
			h.logger.Warn("POST /desks/{deskId}/reconcile - Invalid input: user_id=%s, desk_id=%d", userID, deskID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /desks/{deskId}/reconcile - Failed: user_id=%s, desk_id=%d, error=%v",
				userID, deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /desks/{deskId}/reconcile - Finished: user_id=%s, desk_id=%d, outcome=%s",
		userID, deskID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
