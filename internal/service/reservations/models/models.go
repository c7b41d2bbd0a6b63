package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("invalid reservation duration")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID string `json:"userId"`
}

// UpdateDurationRequest запрос на смену длительности бронирования
type UpdateDurationRequest struct {
	UserID   string `json:"userId"`
	Duration string `json:"duration"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя.
// UserID - инициатор запроса, TargetUserID - чьи бронирования запрашиваются.
type GetUserReservationsRequest struct {
	UserID       string     `json:"userId"`
	TargetUserID string     `json:"targetUserId"`
	DeskID       *int64     `json:"deskId,omitempty"`    // Фильтр по столу (опционально)
	StartDate    *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate      *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// GetReservationsRequest запрос на получение всех бронирований за период.
// Доступен только администраторам.
type GetReservationsRequest struct {
	UserID    string     `json:"userId"`
	DeskID    *int64     `json:"deskId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserReservationsRequest) ToDomainFilter() domain.ReservationsFilter {
	target := r.TargetUserID
	return domain.ReservationsFilter{
		UserID:    &target,
		DeskID:    r.DeskID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetReservationsRequest) ToDomainFilter() domain.ReservationsFilter {
	return domain.ReservationsFilter{
		DeskID:    r.DeskID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64  `json:"id"`
	DeskID      int64  `json:"deskId"`
	UserID      string `json:"userId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	Duration    string `json:"duration"`    // AM / PM / FULL

	// Денормализованное имя сотрудника; пусто, если каталог был недоступен
	EmployeeDisplayName string `json:"employeeDisplayName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                  r.ID,
		DeskID:              r.DeskID,
		UserID:              r.UserID,
		BookingDate:         r.BookingDate.Format(domain.DateFormat),
		Duration:            string(r.Duration),
		EmployeeDisplayName: r.EmployeeDisplayName,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// ToDomainDuration конвертирует строку в domain.Duration с валидацией
func ToDomainDuration(duration string) (domain.Duration, error) {
	d := domain.Duration(duration)
	if !d.IsValid() {
		return "", ErrInvalidDuration
	}
	return d, nil
}
