package update_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans/models"
)

const (
	msgUserNotResolved    = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPlanID      = "некорректный идентификатор плана"
	msgInvalidPlan        = "некорректные параметры плана"
	msgPlanNotFound       = "план этажа не найден"
	msgAccessDenied       = "доступно только администраторам"
)

// UpdatePlanRequest HTTP request model
type UpdatePlanRequest struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"originX"`
	OriginY int    `json:"originY"`
}

type Handler struct {
	service PlanService
	logger  Logger
}

func NewHandler(service PlanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/plan/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /plan/{planId} - Invalid plan id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	var req UpdatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /plan/{planId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePlan(r.Context(), planID, &models.UpdatePlanRequest{
		UserID:  userID,
		Name:    req.Name,
		Width:   req.Width,
		Height:  req.Height,
		OriginX: req.OriginX,
		OriginY: req.OriginY,
	})
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrInvalidInput):
			h.logger.Warn("PUT /plan/{planId} - Invalid input: plan_id=%d", planID)
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("PUT /plan/{planId} - Not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, plans.ErrAccessDenied):
			h.logger.Warn("PUT /plan/{planId} - Access denied: user_id=%s, plan_id=%d", userID, planID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /plan/{planId} - Failed: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /plan/{planId} - Updated: plan_id=%d, user_id=%s", planID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
