package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID:     1,
		Width:  domain.DefaultPlanWidth,
		Height: domain.DefaultPlanHeight,
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name     string
		coord    int
		grid     int
		expected int
	}{
		{"rounds down below midpoint", 12, 10, 10},
		{"rounds up above midpoint", 17, 10, 20},
		{"exact node unchanged", 40, 20, 40},
		{"zero unchanged", 0, 20, 0},
		{"negative coordinate", -12, 10, -10},
		{"half grid", 23, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snap(tt.coord, tt.grid))
		})
	}
}

func TestSnap_Idempotent(t *testing.T) {
	grids := []int{1, 5, 10, 20}
	for _, g := range grids {
		for x := -100; x <= 100; x += 7 {
			once := Snap(x, g)
			assert.Equal(t, once, Snap(once, g), "snap must be idempotent for x=%d g=%d", x, g)
		}
	}
}

func TestPlaceDesk_SnapsToGrid(t *testing.T) {
	plan := testPlan()

	desk, err := PlaceDesk(plan, nil, 12, 12)
	require.NoError(t, err)

	assert.Equal(t, 20, desk.X)
	assert.Equal(t, 20, desk.Y)
	assert.Equal(t, 0, desk.Rotation)
	assert.Equal(t, plan.ID, desk.PlanID)
}

func TestPlaceDesk_OverlapIsHardError(t *testing.T) {
	plan := testPlan()

	first, err := PlaceDesk(plan, nil, 12, 12)
	require.NoError(t, err)
	first.ID = 1

	// Вторая установка попадает в тот же узел сетки после привязки
	_, err = PlaceDesk(plan, []*domain.Desk{first}, 11, 11)
	require.ErrorIs(t, err, ErrDeskOverlap)
}

func TestPlaceDesk_AdjacentDesksDoNotOverlap(t *testing.T) {
	plan := testPlan()

	first, err := PlaceDesk(plan, nil, 0, 0)
	require.NoError(t, err)
	first.ID = 1

	// Стол вплотную справа: x = DeskWidth, общие ребра не считаются пересечением
	second, err := PlaceDesk(plan, []*domain.Desk{first}, domain.DeskWidth, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DeskWidth, second.X)
}

func TestPlaceDesk_ClampsToPlanBounds(t *testing.T) {
	plan := testPlan()

	// Далеко за правым нижним углом: прижимается, а не отклоняется
	desk, err := PlaceDesk(plan, nil, plan.Width+500, plan.Height+500)
	require.NoError(t, err)

	assert.Equal(t, plan.Width-domain.DeskWidth, desk.X)
	assert.Equal(t, plan.Height-domain.DeskHeight, desk.Y)

	// Отрицательные координаты прижимаются к началу плана
	desk2, err := PlaceDesk(plan, []*domain.Desk{desk}, -300, -300)
	require.NoError(t, err)
	assert.Equal(t, 0, desk2.X)
	assert.Equal(t, 0, desk2.Y)
}

func TestDesksOverlap_Symmetric(t *testing.T) {
	cases := []struct {
		a, b *domain.Desk
	}{
		{&domain.Desk{X: 0, Y: 0}, &domain.Desk{X: 20, Y: 20}},
		{&domain.Desk{X: 0, Y: 0}, &domain.Desk{X: domain.DeskWidth, Y: 0}},
		{&domain.Desk{X: 100, Y: 100}, &domain.Desk{X: 400, Y: 400}},
		{&domain.Desk{X: 40, Y: 40}, &domain.Desk{X: 40, Y: 40}},
	}

	for _, c := range cases {
		assert.Equal(t, DesksOverlap(c.a, c.b), DesksOverlap(c.b, c.a))
	}
}

func TestDesksOverlap_IgnoresRotation(t *testing.T) {
	// Повернутый стол сохраняет прямоугольник коллизий неповернутого
	a := &domain.Desk{X: 0, Y: 0, Rotation: 90}
	b := &domain.Desk{X: domain.DeskWidth, Y: 0}

	assert.False(t, DesksOverlap(a, b))

	c := &domain.Desk{X: domain.DeskWidth - domain.GridSize, Y: 0}
	assert.True(t, DesksOverlap(a, c))
}

func TestMoveDesk(t *testing.T) {
	plan := testPlan()
	desk := &domain.Desk{ID: 1, PlanID: plan.ID, X: 0, Y: 0}
	other := &domain.Desk{ID: 2, PlanID: plan.ID, X: 200, Y: 200}
	desks := []*domain.Desk{desk, other}

	t.Run("move snaps and updates", func(t *testing.T) {
		err := MoveDesk(plan, desks, desk, 93, 47)
		require.NoError(t, err)
		assert.Equal(t, 100, desk.X)
		assert.Equal(t, 40, desk.Y)
	})

	t.Run("move onto another desk fails", func(t *testing.T) {
		err := MoveDesk(plan, desks, desk, 200, 200)
		require.ErrorIs(t, err, ErrDeskOverlap)
		// Координаты не изменились после отклоненного перемещения
		assert.Equal(t, 100, desk.X)
		assert.Equal(t, 40, desk.Y)
	})

	t.Run("move ignores own previous position", func(t *testing.T) {
		err := MoveDesk(plan, desks, desk, 110, 40)
		require.NoError(t, err)
	})
}

func TestRotateDesk_CyclesQuarters(t *testing.T) {
	desk := &domain.Desk{}

	expected := []int{90, 180, 270, 0}
	for _, want := range expected {
		RotateDesk(desk)
		assert.Equal(t, want, desk.Rotation)
	}
}

func TestPlaceWall_HalfGridSnap(t *testing.T) {
	plan := testPlan()

	wall := PlaceWall(plan, 13, 27, 104, 9)

	// Половинная сетка = 10 при GridSize 20
	assert.Equal(t, 10, wall.X)
	assert.Equal(t, 30, wall.Y)
	assert.Equal(t, 100, wall.Width)
	assert.Equal(t, domain.MinWallSize, wall.Height)
}

func TestResizeWall_ClampsPosition(t *testing.T) {
	plan := testPlan()
	wall := &domain.Wall{PlanID: plan.ID, X: plan.Width - 20, Y: 0, Width: 20, Height: 20}

	ResizeWall(plan, wall, 200, 20)

	assert.Equal(t, 200, wall.Width)
	// Позиция прижата, чтобы стена осталась внутри плана
	assert.Equal(t, plan.Width-200, wall.X)
}
