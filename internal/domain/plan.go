package domain

import "time"

// Plan план этажа. В системе существует не более одного плана;
// создание второго отклоняется на уровне хранилища.
type Plan struct {
	ID      int64
	Name    string
	Width   int
	Height  int
	OriginX int
	OriginY int
	OwnerID string // администратор, последним создавший/изменивший план

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Desk стол на плане. Позиция привязана к целой сетке (GridSize).
type Desk struct {
	ID       int64
	PlanID   int64
	X        int
	Y        int
	Rotation int // 0/90/180/270

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidRotation проверяет допустимость поворота
func (d *Desk) HasValidRotation() bool {
	for _, r := range ValidRotations {
		if d.Rotation == r {
			return true
		}
	}
	return false
}

// NextRotation возвращает следующий поворот по кругу с шагом 90°
func (d *Desk) NextRotation() int {
	return (d.Rotation + 90) % 360
}

// IsPending сообщает, что стол еще не получил серверный идентификатор.
// Клиент присваивает временный id (<= 0) до подтверждения создания;
// временный id никогда не попадает в хранилище.
func (d *Desk) IsPending() bool {
	return d.ID <= 0
}

// Wall стена на плане. Декоративный элемент, бронирования на неё
// не ссылаются. Привязывается к половинной сетке (GridSize/2).
type Wall struct {
	ID     int64
	PlanID int64
	X      int
	Y      int
	Width  int
	Height int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending сообщает, что стена еще не получила серверный идентификатор
func (w *Wall) IsPending() bool {
	return w.ID <= 0
}

// SamePlacement проверяет совпадение позиционных полей двух столов
func (d *Desk) SamePlacement(other *Desk) bool {
	return d.X == other.X && d.Y == other.Y && d.Rotation == other.Rotation
}

// SamePlacement проверяет совпадение позиционных и размерных полей двух стен
func (w *Wall) SamePlacement(other *Wall) bool {
	return w.X == other.X && w.Y == other.Y && w.Width == other.Width && w.Height == other.Height
}
