package reconcile_bookings

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Request модель запроса сверки сессии бронирования.
// SelectedDates - даты, которые пользователь хочет видеть забронированными
// после подтверждения; сервис сам вычисляет минимальный набор операций
// относительно текущего состояния.
type Request struct {
	UserID        string
	DeskID        int64
	SelectedDates []time.Time
	Duration      domain.Duration

	// ConfirmCancelAll подтверждение сценария "отменить все":
	// пустой выбор при непустом исходном состоянии без этого флага
	// отклоняется до запуска операций.
	ConfirmCancelAll bool

	// SingleDayDate дата дневного вида. Если задана, выбор не может
	// содержать другие даты - это ошибка валидации.
	SingleDayDate *time.Time
}

// OperationType тип операции сверки
type OperationType string

const (
	OperationCreate         OperationType = "create"
	OperationDelete         OperationType = "delete"
	OperationUpdateDuration OperationType = "update_duration"
)

// OperationResult исход одной операции сессии.
// Операции независимы: неудача одной не откатывает соседние.
type OperationResult struct {
	Type          OperationType
	Date          time.Time
	ReservationID *int64 // Для delete/update - цель, для create - созданный id
	Success       bool
	Reason        string // Причина неудачи, пусто при успехе
}

// Outcome итог сессии после завершения всех операций
type Outcome string

const (
	// OutcomeNoOp все три набора операций пусты, сеть не трогали
	OutcomeNoOp Outcome = "no_op"

	// OutcomeAllSuccess все операции завершились успешно
	OutcomeAllSuccess Outcome = "all_success"

	// OutcomePartialSuccess часть операций не прошла; успешные не откатываются.
	// Никогда не схлопывается в all_success.
	OutcomePartialSuccess Outcome = "partial_success"

	// OutcomeAllFailed ни одна операция не прошла
	OutcomeAllFailed Outcome = "all_failed"
)

// Response итог сверки: счетчики и поименные исходы операций
type Response struct {
	Outcome   Outcome
	Total     int
	Succeeded int
	Failed    int
	Results   []OperationResult
}
