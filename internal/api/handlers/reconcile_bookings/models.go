package reconcile_bookings

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	reconcileBookings "github.com/m04kA/SMC-WorkplaceService/internal/usecase/reconcile_bookings"
)

// ReconcileRequest HTTP request model.
// SelectedDates - полный желаемый набор дат бронирования стола.
type ReconcileRequest struct {
	SelectedDates    []string `json:"selectedDates"` // "2025-10-15"
	Duration         string   `json:"duration"`      // AM / PM / FULL
	ConfirmCancelAll bool     `json:"confirmCancelAll,omitempty"`
	SingleDayDate    *string  `json:"singleDayDate,omitempty"`
}

// OperationResultResponse исход одной операции сверки
type OperationResultResponse struct {
	Type          string `json:"type"` // create / delete / update_duration
	Date          string `json:"date"`
	ReservationID *int64 `json:"reservationId,omitempty"`
	Success       bool   `json:"success"`
	Reason        string `json:"reason,omitempty"`
}

// ReconcileResponse HTTP response model
type ReconcileResponse struct {
	Outcome   string                    `json:"outcome"` // no_op / all_success / partial_success / all_failed
	Total     int                       `json:"total"`
	Succeeded int                       `json:"succeeded"`
	Failed    int                       `json:"failed"`
	Results   []OperationResultResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReconcileRequest) ToUseCaseRequest(userID string, deskID int64) (*reconcileBookings.Request, error) {
	dates := make([]time.Time, 0, len(r.SelectedDates))
	for _, s := range r.SelectedDates {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	req := &reconcileBookings.Request{
		UserID:           userID,
		DeskID:           deskID,
		SelectedDates:    dates,
		Duration:         domain.Duration(r.Duration),
		ConfirmCancelAll: r.ConfirmCancelAll,
	}

	if r.SingleDayDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.SingleDayDate)
		if err != nil {
			return nil, err
		}
		req.SingleDayDate = &d
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reconcileBookings.Response) *ReconcileResponse {
	out := &ReconcileResponse{
		Outcome:   string(resp.Outcome),
		Total:     resp.Total,
		Succeeded: resp.Succeeded,
		Failed:    resp.Failed,
		Results:   make([]OperationResultResponse, 0, len(resp.Results)),
	}

	for _, r := range resp.Results {
		out.Results = append(out.Results, OperationResultResponse{
			Type:          string(r.Type),
			Date:          r.Date.Format(domain.DateFormat),
			ReservationID: r.ReservationID,
			Success:       r.Success,
			Reason:        r.Reason,
		})
	}

	return out
}
