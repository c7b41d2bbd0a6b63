package get_desk_availability

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// DateStatus статус стола на конкретную дату с точки зрения спрашивающего
type DateStatus string

const (
	// StatusAvailable стол свободен, дату можно выбирать
	StatusAvailable DateStatus = "AVAILABLE"

	// StatusOwnReservation стол занят самим спрашивающим (можно отменить)
	StatusOwnReservation DateStatus = "OWN_RESERVATION"

	// StatusReservedByOther стол занят другим сотрудником.
	// Терминальный статус для спрашивающего: такая дата никогда
	// не может оказаться в его выборе.
	StatusReservedByOther DateStatus = "RESERVED_BY_OTHER"
)

// Request модель запроса доступности стола за период
type Request struct {
	UserID string    // Спрашивающий (из сессии)
	DeskID int64     // ID стола
	From   time.Time // Начало периода включительно
	To     time.Time // Конец периода включительно
}

// DayAvailability статус стола на один рабочий день
type DayAvailability struct {
	Date          time.Time
	Status        DateStatus
	ReservationID *int64           // Заполнено для OWN_RESERVATION (цель update/delete)
	Duration      *domain.Duration // Заполнено, когда стол занят
	ReservedBy    string           // Display name владельца (пусто для AVAILABLE)
}

// Response модель ответа: статус по каждому рабочему дню периода
type Response struct {
	DeskID int64
	Days   []DayAvailability
}
