package get_user_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

const (
	msgUserNotResolved = "не удалось определить пользователя"
	msgInvalidDates    = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgAccessDenied    = "нет прав на просмотр чужих бронирований"
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

// Handle GET /api/v1/users/{userId}/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	targetUserID := mux.Vars(r)["userId"]

	from, to, err := parseOptionalPeriod(r)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/reservations - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), &models.GetUserReservationsRequest{
		UserID:       userID,
		TargetUserID: targetUserID,
		StartDate:    from,
		EndDate:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/reservations - Access denied: user_id=%s, target=%s",
				userID, targetUserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{userId}/reservations - Failed: target=%s, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Success: target=%s, count=%d",
		targetUserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseOptionalPeriod разбирает необязательные query-параметры from/to
func parseOptionalPeriod(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if s := r.URL.Query().Get("from"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}

	if s := r.URL.Query().Get("to"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}

	return from, to, nil
}
