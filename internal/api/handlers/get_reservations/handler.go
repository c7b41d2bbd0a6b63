package get_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

const (
	msgUserNotResolved = "не удалось определить пользователя"
	msgInvalidDates    = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgInvalidDeskID   = "некорректный идентификатор стола"
	msgAccessDenied    = "доступно только администраторам"
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

// Handle GET /api/v1/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD&deskId=N
// Доступно только администраторам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	req := &models.GetReservationsRequest{UserID: userID}

	if s := r.URL.Query().Get("from"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		req.StartDate = &parsed
	}

	if s := r.URL.Query().Get("to"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		req.EndDate = &parsed
	}

	if s := r.URL.Query().Get("deskId"); s != "" {
		deskID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDeskID)
			return
		}
		req.DeskID = &deskID
	}

	result, err := h.service.GetAllReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reservations - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Success: user_id=%s, count=%d", userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
