package get_desk_availability

import (
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	getDeskAvailability "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_desk_availability"
)

// DayAvailabilityResponse статус стола на один рабочий день
type DayAvailabilityResponse struct {
	Date          string  `json:"date"`   // "2025-10-15"
	Status        string  `json:"status"` // AVAILABLE / OWN_RESERVATION / RESERVED_BY_OTHER
	ReservationID *int64  `json:"reservationId,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	ReservedBy    string  `json:"reservedBy,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DeskID int64                     `json:"deskId"`
	Days   []DayAvailabilityResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeskAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		DeskID: resp.DeskID,
		Days:   make([]DayAvailabilityResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		d := DayAvailabilityResponse{
			Date:          day.Date.Format(domain.DateFormat),
			Status:        string(day.Status),
			ReservationID: day.ReservationID,
			ReservedBy:    day.ReservedBy,
		}
		if day.Duration != nil {
			duration := string(*day.Duration)
			d.Duration = &duration
		}
		out.Days = append(out.Days, d)
	}

	return out
}
