package get_desk_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_desk_availability: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("get_desk_availability: invalid date range")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("get_desk_availability: desk not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_desk_availability: internal error")
)
