package domain

import "time"

// Duration занимаемая часть рабочего дня
type Duration string

const (
	DurationAM   Duration = "AM"
	DurationPM   Duration = "PM"
	DurationFull Duration = "FULL"
)

// IsValid проверяет, что значение длительности допустимо
func (d Duration) IsValid() bool {
	return d == DurationAM || d == DurationPM || d == DurationFull
}

// Reservation бронирование одного стола на один календарный день.
// Слот "стол + дата" эксклюзивен: даже AM-бронирование занимает стол
// на весь день, duration описывает занимаемую часть дня, а не делит слот.
type Reservation struct {
	ID                  int64
	DeskID              int64
	UserID              string
	EmployeeDisplayName string
	BookingDate         time.Time // только дата, время обнулено
	Duration            Duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy проверяет владение по строгому совпадению идентификатора.
// Нестрогие стратегии сопоставления (по имени, по email) живут выше,
// в usecase доступности - это их компенсация неполных данных, не домена.
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// IsOnDate проверяет, что бронирование относится к указанной дате
func (r *Reservation) IsOnDate(date time.Time) bool {
	return SameDate(r.BookingDate, date)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	DeskID    *int64     // Фильтр по столу (опционально)
	UserID    *string    // Фильтр по пользователю (опционально)
	StartDate *time.Time // Начало периода включительно (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
}

// DateOnly обнуляет компонент времени, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate проверяет, что две отметки времени приходятся на один день
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
