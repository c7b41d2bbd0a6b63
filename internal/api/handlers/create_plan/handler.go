package create_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans/models"
)

const (
	msgUserNotResolved    = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPlan        = "некорректные параметры плана"
	msgPlanExists         = "план этажа уже существует"
	msgAccessDenied       = "доступно только администраторам"
)

// CreatePlanRequest HTTP request model
type CreatePlanRequest struct {
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

// Handle POST /api/v1/plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgUserNotResolved)
		return
	}

	var req CreatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePlan(r.Context(), &models.CreatePlanRequest{
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
			h.logger.Warn("POST /plan - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, plans.ErrPlanAlreadyExists):
			h.logger.Warn("POST /plan - Plan already exists: user_id=%s", userID)
			handlers.RespondConflict(w, msgPlanExists)

		case errors.Is(err, plans.ErrAccessDenied):
			h.logger.Warn("POST /plan - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /plan - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plan - Plan created: plan_id=%d, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
