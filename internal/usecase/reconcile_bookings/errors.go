package reconcile_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reconcile_bookings: invalid input data")

	// ErrInvalidDate возвращается, когда выбранная дата не проходит
	// окно бронирования (прошлое, выходной, за горизонтом)
	ErrInvalidDate = errors.New("reconcile_bookings: selected date is outside the booking window")

	// ErrSingleDayViolation возвращается, когда в режиме дневного вида
	// выбор содержит дату, отличную от просматриваемой. Это ошибка
	// валидации, а не повод молча выбросить лишние даты.
	ErrSingleDayViolation = errors.New("reconcile_bookings: selection contains dates outside the viewed day")

	// ErrCancelAllNotConfirmed возвращается, когда пустой выбор при
	// непустом исходном состоянии означает "отменить все бронирования",
	// но явное подтверждение не получено. Ни одна операция не запускается.
	ErrCancelAllNotConfirmed = errors.New("reconcile_bookings: cancelling all reservations requires explicit confirmation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reconcile_bookings: internal error")
)
