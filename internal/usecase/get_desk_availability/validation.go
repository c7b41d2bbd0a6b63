package get_desk_availability

import (
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Максимальная длина запрашиваемого периода в днях.
// Окно бронирования - две недели, запас оставлен для недельного вида.
const maxRangeDays = 31

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID <= 0 {
		return fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidDateRange)
	}

	from := domain.DateOnly(req.From)
	to := domain.DateOnly(req.To)

	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidDateRange)
	}

	if int(to.Sub(from).Hours()/24) > maxRangeDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrInvalidDateRange, maxRangeDays)
	}

	return nil
}
