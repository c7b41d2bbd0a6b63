package sync_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	syncPlan "github.com/m04kA/SMC-WorkplaceService/internal/usecase/sync_plan"
)

const (
	msgUserNotResolved    = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPlanID      = "некорректный идентификатор плана"
	msgInvalidState       = "некорректное желаемое состояние плана"
	msgPlanNotFound       = "план этажа не найден"
	msgObjectNotFound     = "объект плана не найден, обновите план и повторите"
	msgDeskOverlap        = "столы в желаемом размещении пересекаются"
	msgAccessDenied       = "доступно только администраторам"
)

type Handler struct {
	useCase SyncPlanUseCase
	logger  Logger
}

func NewHandler(useCase SyncPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/plan/{planId}/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /plan/{planId}/sync - Invalid plan id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	var req SyncPlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plan/{planId}/sync - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, planID))
	if err != nil {
		switch {
		case errors.Is(err, syncPlan.ErrInvalidInput):
			h.logger.Warn("POST /plan/{planId}/sync - Invalid input: plan_id=%d", planID)
			handlers.RespondBadRequest(w, msgInvalidState)

		case errors.Is(err, syncPlan.ErrPermissionDenied):
			h.logger.Warn("POST /plan/{planId}/sync - Access denied: user_id=%s, plan_id=%d", userID, planID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, syncPlan.ErrPlanNotFound):
			h.logger.Warn("POST /plan/{planId}/sync - Plan not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, syncPlan.ErrDeskNotFound), errors.Is(err, syncPlan.ErrWallNotFound):
			h.logger.Warn("POST /plan/{planId}/sync - Stale object reference: plan_id=%d", planID)
			handlers.RespondConflict(w, msgObjectNotFound)

		case errors.Is(err, syncPlan.ErrDeskOverlap):
			h.logger.Warn("POST /plan/{planId}/sync - Desk overlap: plan_id=%d", planID)
			handlers.RespondConflict(w, msgDeskOverlap)

		default:
			h.logger.Error("POST /plan/{planId}/sync - Failed: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plan/{planId}/sync - Synced: plan_id=%d, desks=%d, walls=%d",
		planID, len(result.Desks), len(result.Walls))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
