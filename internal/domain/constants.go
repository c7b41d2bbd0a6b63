package domain

// Grid and plan geometry constants
const (
	// GridSize шаг сетки плана в условных единицах.
	// Столы привязываются к целой сетке, стены - к половинной (GridSize/2),
	// чтобы стены могли прилегать к столам вплотную.
	GridSize = 20

	// DeskWidth / DeskHeight фиксированный габарит стола.
	// Поворот стола НЕ влияет на габарит для проверки пересечений:
	// коллизии считаются по неповернутому прямоугольнику.
	DeskWidth  = 60
	DeskHeight = 40

	// MinWallSize минимальный размер стены после привязки к сетке
	MinWallSize = GridSize / 2

	DefaultPlanWidth  = 1200
	DefaultPlanHeight = 800
)

// Booking window constants
const (
	// BookingWindowDays горизонт бронирования: сегодня + 14 календарных дней
	BookingWindowDays = 14

	// BusinessDayIterationFactor множитель потолка итераций при переборе
	// рабочих дней. Гарантирует завершение цикла, даже если логика
	// пропуска выходных перестанет продвигать дату.
	BusinessDayIterationFactor = 2
)

// Rotation допустимые значения поворота стола в градусах
var ValidRotations = []int{0, 90, 180, 270}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, без таймзоны
)
