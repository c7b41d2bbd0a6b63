package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Имя сотрудника не передается клиентом: сервис сам разрешает личность
// по идентификатору из аутентифицированной сессии.
type Request struct {
	UserID   string          // Идентификатор пользователя из сессии
	DeskID   int64           // ID стола
	Date     time.Time       // Дата бронирования (без времени)
	Duration domain.Duration // AM / PM / FULL
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                  int64
	DeskID              int64
	UserID              string
	EmployeeDisplayName string
	BookingDate         time.Time
	Duration            domain.Duration
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
