package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDeskAlreadyReserved возвращается, когда слот "стол + дата" уже занят.
	// Источник - уникальный индекс (desk_id, booking_date): при одновременных
	// вставках побеждает ровно одна, проигравшая получает эту ошибку.
	ErrDeskAlreadyReserved = errors.New("reservation.repository: desk is already reserved for this date")

	// ErrUserDayTaken возвращается, когда у пользователя уже есть бронирование
	// на эту дату за любым столом. Источник - уникальный индекс
	// (user_id, booking_date).
	ErrUserDayTaken = errors.New("reservation.repository: user already has a reservation for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
