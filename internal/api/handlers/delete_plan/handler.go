package delete_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans"
)

const (
	msgUserNotResolved = "не удалось определить пользователя"
	msgInvalidPlanID   = "некорректный идентификатор плана"
	msgPlanNotFound    = "план этажа не найден"
	msgAccessDenied    = "доступно только администраторам"
)

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

// Handle DELETE /api/v1/plan/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /plan/{planId} - Invalid plan id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	if err := h.service.DeletePlan(r.Context(), planID, userID); err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("DELETE /plan/{planId} - Not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, plans.ErrAccessDenied):
			h.logger.Warn("DELETE /plan/{planId} - Access denied: user_id=%s, plan_id=%d", userID, planID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /plan/{planId} - Failed: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /plan/{planId} - Deleted: plan_id=%d, user_id=%s", planID, userID)
	w.WriteHeader(http.StatusNoContent)
}
