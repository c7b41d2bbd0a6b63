package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	createReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DeskID      int64  `json:"deskId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	Duration    string `json:"duration"`    // AM / PM / FULL
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                  int64  `json:"id"`
	DeskID              int64  `json:"deskId"`
	UserID              string `json:"userId"`
	EmployeeDisplayName string `json:"employeeDisplayName,omitempty"`
	BookingDate         string `json:"bookingDate"`
	Duration            string `json:"duration"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:   userID,
		DeskID:   r.DeskID,
		Date:     bookingDate,
		Duration: domain.Duration(r.Duration),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                  resp.ID,
		DeskID:              resp.DeskID,
		UserID:              resp.UserID,
		EmployeeDisplayName: resp.EmployeeDisplayName,
		BookingDate:         resp.BookingDate.Format(domain.DateFormat),
		Duration:            string(resp.Duration),
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
