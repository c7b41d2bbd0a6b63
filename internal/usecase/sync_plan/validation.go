package sync_plan

import (
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса синхронизации
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.PlanID <= 0 {
		return fmt.Errorf("%w: planID must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: plan name is required", ErrInvalidInput)
	}

	if req.Width < domain.DeskWidth || req.Height < domain.DeskHeight {
		return fmt.Errorf("%w: plan dimensions are too small", ErrInvalidInput)
	}

	for _, d := range req.Desks {
		if !(&domain.Desk{Rotation: d.Rotation}).HasValidRotation() {
			return fmt.Errorf("%w: desk rotation must be one of 0, 90, 180, 270", ErrInvalidInput)
		}
	}

	return nil
}
