package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDeskNotFound возвращается, когда стол не найден на плане
	ErrDeskNotFound = errors.New("create_reservation: desk not found")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_reservation: booking date is in the past")

	// ErrWeekendDate возвращается при попытке забронировать выходной день
	ErrWeekendDate = errors.New("create_reservation: weekends are not bookable")

	// ErrDateOutsideWindow возвращается, когда дата выходит за горизонт бронирования
	ErrDateOutsideWindow = errors.New("create_reservation: date is outside the booking window")

	// ErrDeskAlreadyReserved возвращается, когда стол уже занят на эту дату
	ErrDeskAlreadyReserved = errors.New("create_reservation: desk is already reserved for this date")

	// ErrUserDayTaken возвращается, когда у пользователя уже есть бронирование на эту дату
	ErrUserDayTaken = errors.New("create_reservation: user already has a reservation for this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
