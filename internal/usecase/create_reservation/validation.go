package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/bookingwindow"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID <= 0 {
		return fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Duration.IsValid() {
		return fmt.Errorf("%w: duration must be one of AM, PM, FULL", ErrInvalidInput)
	}

	return nil
}

// validateBookingDate проверяет дату против окна бронирования:
// не в прошлом, не выходной, не дальше горизонта.
func validateBookingDate(date, now time.Time) error {
	d := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if d.Before(today) {
		return ErrDateInPast
	}

	if bookingwindow.IsWeekend(d) {
		return ErrWeekendDate
	}

	if !bookingwindow.IsWithinBookingWindow(d, today) {
		return fmt.Errorf("%w: can only book up to %d days ahead", ErrDateOutsideWindow, domain.BookingWindowDays)
	}

	return nil
}
