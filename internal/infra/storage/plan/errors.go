package plan

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план этажа не найден
	ErrPlanNotFound = errors.New("plan.repository: plan not found")

	// ErrPlanAlreadyExists возвращается при попытке создать второй план.
	// Источник - уникальный индекс-синглтон в таблице plans: в системе
	// существует не более одного плана.
	ErrPlanAlreadyExists = errors.New("plan.repository: a plan already exists")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("plan.repository: desk not found")

	// ErrWallNotFound возвращается, когда стена не найдена
	ErrWallNotFound = errors.New("plan.repository: wall not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("plan.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("plan.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("plan.repository: failed to scan row")
)
