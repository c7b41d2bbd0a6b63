package layout

import "errors"

var (
	// ErrDeskOverlap возвращается, когда размещение стола пересекается
	// с другим столом. Выход за границы плана ошибкой не является -
	// координаты прижимаются к границе.
	ErrDeskOverlap = errors.New("layout: desk placement overlaps an existing desk")

	// ErrInvalidGridSize возвращается при неположительном шаге сетки
	ErrInvalidGridSize = errors.New("layout: grid size must be positive")
)
