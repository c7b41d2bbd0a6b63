package sync_plan

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sync_plan: invalid input data")

	// ErrPermissionDenied возвращается, когда синхронизацию запускает
	// не администратор. Проверка выполняется до любых обращений к хранилищу.
	ErrPermissionDenied = errors.New("sync_plan: permission denied")

	// ErrPlanNotFound возвращается, когда план отсутствует или id не совпадает
	ErrPlanNotFound = errors.New("sync_plan: plan not found")

	// ErrDeskNotFound возвращается, когда желаемое состояние ссылается
	// на серверный id стола, которого нет на плане
	ErrDeskNotFound = errors.New("sync_plan: desk not found")

	// ErrWallNotFound возвращается, когда желаемое состояние ссылается
	// на серверный id стены, которой нет на плане
	ErrWallNotFound = errors.New("sync_plan: wall not found")

	// ErrDeskOverlap возвращается, когда желаемое размещение содержит
	// пересекающиеся столы. Сессия отклоняется целиком.
	ErrDeskOverlap = errors.New("sync_plan: desired layout contains overlapping desks")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_plan: internal error")
)
