package reconcile_bookings

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/bookingwindow"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса сверки.
// Любая ошибка валидации блокирует сессию целиком: ни одна операция
// не запускается.
func validateRequest(req *Request, now time.Time) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID <= 0 {
		return fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}

	if !req.Duration.IsValid() {
		return fmt.Errorf("%w: duration must be one of AM, PM, FULL", ErrInvalidInput)
	}

	today := domain.DateOnly(now)

	// Все выбранные даты обязаны попадать в окно бронирования
	for _, d := range req.SelectedDates {
		if !bookingwindow.IsWithinBookingWindow(d, today) {
			return fmt.Errorf("%w: %s", ErrInvalidDate, domain.DateOnly(d).Format(domain.DateFormat))
		}
	}

	// Дневной вид: выбор не может содержать даты вне просматриваемого дня.
	// Лишняя дата - ошибка, а не кандидат на молчаливое удаление.
	if req.SingleDayDate != nil {
		viewed := domain.DateOnly(*req.SingleDayDate)
		for _, d := range req.SelectedDates {
			if !domain.SameDate(d, viewed) {
				return fmt.Errorf("%w: %s is not the viewed day %s",
					ErrSingleDayViolation,
					domain.DateOnly(d).Format(domain.DateFormat),
					viewed.Format(domain.DateFormat))
			}
		}
	}

	return nil
}
