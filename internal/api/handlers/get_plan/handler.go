package get_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans"
)

const (
	msgPlanNotFound = "план этажа не настроен"
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

// Handle GET /api/v1/plan
// Публичный endpoint: просмотр плана не требует аутентификации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPlan(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("GET /plan - Plan not configured")
			handlers.RespondNotFound(w, msgPlanNotFound)

		default:
			h.logger.Error("GET /plan - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /plan - Success: plan_id=%d, desks=%d, walls=%d",
		result.ID, len(result.Desks), len(result.Walls))
	handlers.RespondJSON(w, http.StatusOK, result)
}
