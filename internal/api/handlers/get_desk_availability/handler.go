package get_desk_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/bookingwindow"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	getDeskAvailability "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_desk_availability"
)

const (
	msgUserNotResolved = "не удалось определить пользователя"
	msgInvalidDeskID   = "некорректный идентификатор стола"
	msgInvalidDates    = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgInvalidRange    = "некорректный диапазон дат"
	msgDeskNotFound    = "стол не найден"
)

type Handler struct {
	useCase GetDeskAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDeskAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks/{deskId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
// Без параметров from/to период по умолчанию - текущая рабочая неделя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	deskID, err := strconv.ParseInt(mux.Vars(r)["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /desks/{deskId}/availability - Invalid desk id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	from, to, err := parsePeriod(r)
	if err != nil {
		h.logger.Warn("GET /desks/{deskId}/availability - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDeskAvailability.Request{
		UserID: userID,
		DeskID: deskID,
		From:   from,
		To:     to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDeskAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /desks/{deskId}/availability - Invalid range: desk_id=%d", deskID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getDeskAvailability.ErrDeskNotFound):
			h.logger.Warn("GET /desks/{deskId}/availability - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, getDeskAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /desks/{deskId}/availability - Failed: desk_id=%d, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/{deskId}/availability - Success: desk_id=%d, days=%d", deskID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parsePeriod разбирает query-параметры from/to; при их отсутствии
// возвращает границы текущей рабочей недели
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" && toStr == "" {
		week := bookingwindow.CurrentWeek(time.Now())
		return week[0], week[len(week)-1], nil
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}
