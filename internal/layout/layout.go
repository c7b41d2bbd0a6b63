package layout

import (
	"math"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Пакет layout реализует правила размещения объектов на плане этажа:
// привязку координат к сетке, прижатие к границам плана и проверку
// пересечений столов по осевым прямоугольникам (AABB).
//
// Поворот стола намеренно НЕ участвует в расчете границ: коллизии
// считаются по неповернутому прямоугольнику DeskWidth x DeskHeight.
// Это детерминированно и совпадает с уже сохраненными планами.

// aabb осевой прямоугольник
type aabb struct {
	x, y          int
	width, height int
}

// overlaps проверяет реальное пересечение двух прямоугольников.
// Прямоугольники, соприкасающиеся ребрами, пересечением не считаются:
// столы, стоящие вплотную на соседних клетках сетки, допустимы.
func (a aabb) overlaps(b aabb) bool {
	return a.x < b.x+b.width &&
		a.x+a.width > b.x &&
		a.y < b.y+b.height &&
		a.y+a.height > b.y
}

// deskBounds возвращает прямоугольник коллизий стола (без учета поворота)
func deskBounds(x, y int) aabb {
	return aabb{x: x, y: y, width: domain.DeskWidth, height: domain.DeskHeight}
}

// Snap округляет координату до ближайшего узла сетки.
// Идемпотентна: Snap(Snap(x, g), g) == Snap(x, g).
func Snap(coord, gridSize int) int {
	if gridSize <= 0 {
		return coord
	}
	return int(math.Round(float64(coord)/float64(gridSize))) * gridSize
}

// clamp прижимает значение к отрезку [lo, hi]
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// snapAndClampDesk привязывает координаты стола к целой сетке и прижимает
// их к границам плана с учетом габарита стола
func snapAndClampDesk(plan *domain.Plan, x, y int) (int, int) {
	sx := Snap(x, domain.GridSize)
	sy := Snap(y, domain.GridSize)
	sx = clamp(sx, plan.OriginX, plan.OriginX+plan.Width-domain.DeskWidth)
	sy = clamp(sy, plan.OriginY, plan.OriginY+plan.Height-domain.DeskHeight)
	return sx, sy
}

// snapAndClampWall привязывает координаты стены к половинной сетке
// и прижимает их к границам плана с учетом размера стены
func snapAndClampWall(plan *domain.Plan, x, y, width, height int) (int, int) {
	half := domain.GridSize / 2
	sx := Snap(x, half)
	sy := Snap(y, half)
	sx = clamp(sx, plan.OriginX, plan.OriginX+plan.Width-width)
	sy = clamp(sy, plan.OriginY, plan.OriginY+plan.Height-height)
	return sx, sy
}

// NormalizeDeskPosition приводит произвольные координаты стола к допустимым:
// привязка к целой сетке плюс прижатие к границам плана
func NormalizeDeskPosition(plan *domain.Plan, x, y int) (int, int) {
	return snapAndClampDesk(plan, x, y)
}

// NormalizeWallPlacement приводит произвольные координаты и размеры стены
// к допустимым: размер к половинной сетке (не меньше минимума), позиция
// к половинной сетке внутри плана
func NormalizeWallPlacement(plan *domain.Plan, x, y, width, height int) (int, int, int, int) {
	w := normalizeWallSize(width)
	h := normalizeWallSize(height)
	sx, sy := snapAndClampWall(plan, x, y, w, h)
	return sx, sy, w, h
}

// findOverlapping возвращает первый стол, чей прямоугольник пересекается
// с кандидатом. excludeID исключает сам перемещаемый стол из проверки.
func findOverlapping(candidate aabb, desks []*domain.Desk, excludeID int64) *domain.Desk {
	for _, d := range desks {
		if d.ID == excludeID {
			continue
		}
		if candidate.overlaps(deskBounds(d.X, d.Y)) {
			return d
		}
	}
	return nil
}

// PlaceDesk размещает новый стол на плане.
// Координаты привязываются к сетке и прижимаются к границам; пересечение
// с существующим столом - жесткая ошибка, частичное размещение не происходит.
func PlaceDesk(plan *domain.Plan, desks []*domain.Desk, x, y int) (*domain.Desk, error) {
	sx, sy := snapAndClampDesk(plan, x, y)

	if conflict := findOverlapping(deskBounds(sx, sy), desks, 0); conflict != nil {
		return nil, ErrDeskOverlap
	}

	return &domain.Desk{
		PlanID:   plan.ID,
		X:        sx,
		Y:        sy,
		Rotation: 0,
	}, nil
}

// MoveDesk перемещает существующий стол.
// Дисциплина та же, что при размещении: snap, clamp, проверка пересечений
// со всеми остальными столами плана.
func MoveDesk(plan *domain.Plan, desks []*domain.Desk, desk *domain.Desk, x, y int) error {
	sx, sy := snapAndClampDesk(plan, x, y)

	if conflict := findOverlapping(deskBounds(sx, sy), desks, desk.ID); conflict != nil {
		return ErrDeskOverlap
	}

	desk.X = sx
	desk.Y = sy
	return nil
}

// RotateDesk поворачивает стол на 90° по кругу.
// Прямоугольник коллизий не меняется, поэтому проверка пересечений не нужна.
func RotateDesk(desk *domain.Desk) {
	desk.Rotation = desk.NextRotation()
}

// PlaceWall размещает стену на плане. Стены привязываются к половинной
// сетке и могут пересекаться с чем угодно - это декоративные элементы.
func PlaceWall(plan *domain.Plan, x, y, width, height int) *domain.Wall {
	w := normalizeWallSize(width)
	h := normalizeWallSize(height)
	sx, sy := snapAndClampWall(plan, x, y, w, h)

	return &domain.Wall{
		PlanID: plan.ID,
		X:      sx,
		Y:      sy,
		Width:  w,
		Height: h,
	}
}

// MoveWall перемещает стену с привязкой к половинной сетке
func MoveWall(plan *domain.Plan, wall *domain.Wall, x, y int) {
	sx, sy := snapAndClampWall(plan, x, y, wall.Width, wall.Height)
	wall.X = sx
	wall.Y = sy
}

// ResizeWall изменяет размер стены. Размеры привязываются к половинной
// сетке, позиция прижимается, чтобы стена не вышла за план.
func ResizeWall(plan *domain.Plan, wall *domain.Wall, width, height int) {
	wall.Width = normalizeWallSize(width)
	wall.Height = normalizeWallSize(height)
	wall.X, wall.Y = snapAndClampWall(plan, wall.X, wall.Y, wall.Width, wall.Height)
}

// normalizeWallSize привязывает размер стены к половинной сетке,
// не позволяя ему схлопнуться ниже минимума
func normalizeWallSize(size int) int {
	half := domain.GridSize / 2
	snapped := Snap(size, half)
	if snapped < domain.MinWallSize {
		return domain.MinWallSize
	}
	return snapped
}

// DeskOverlapsAny проверяет, пересекается ли стол с кем-либо из списка.
// Симметрична: DeskOverlapsAny(a, [b]) == DeskOverlapsAny(b, [a]).
func DeskOverlapsAny(desk *domain.Desk, desks []*domain.Desk) bool {
	return findOverlapping(deskBounds(desk.X, desk.Y), desks, desk.ID) != nil
}

// DesksOverlap проверяет пересечение двух столов
func DesksOverlap(a, b *domain.Desk) bool {
	return deskBounds(a.X, a.Y).overlaps(deskBounds(b.X, b.Y))
}
