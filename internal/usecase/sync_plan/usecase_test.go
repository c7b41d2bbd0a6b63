package sync_plan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeEmployeeClient struct {
	admins map[string]bool
	err    error
}

func (f *fakeEmployeeClient) IsAdmin(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakePlanRepo фейк репозитория плана с журналом операций
type fakePlanRepo struct {
	plan  *domain.Plan
	desks []*domain.Desk
	walls []*domain.Wall

	nextDeskID int64
	nextWallID int64

	updatePlanErr error

	planUpdated  bool
	deletedDesks []int64
	updatedDesks []int64
	createdDesks int
	deletedWalls []int64
	createdWalls int
}

func (f *fakePlanRepo) GetPlan(_ context.Context) (*domain.Plan, error) {
	if f.plan == nil {
		return nil, errors.New("plan: plan not found")
	}
	cp := *f.plan
	return &cp, nil
}

func (f *fakePlanRepo) UpdatePlan(_ context.Context, p *domain.Plan) error {
	if f.updatePlanErr != nil {
		return f.updatePlanErr
	}
	f.planUpdated = true
	f.plan = p
	return nil
}

func (f *fakePlanRepo) ListDesksByPlan(_ context.Context, _ int64) ([]*domain.Desk, error) {
	return f.desks, nil
}

func (f *fakePlanRepo) CreateDesk(_ context.Context, d *domain.Desk) (*domain.Desk, error) {
	f.nextDeskID++
	f.createdDesks++
	created := *d
	created.ID = f.nextDeskID
	return &created, nil
}

func (f *fakePlanRepo) UpdateDesk(_ context.Context, d *domain.Desk) error {
	f.updatedDesks = append(f.updatedDesks, d.ID)
	return nil
}

func (f *fakePlanRepo) DeleteDesk(_ context.Context, id int64) error {
	f.deletedDesks = append(f.deletedDesks, id)
	return nil
}

func (f *fakePlanRepo) ListWallsByPlan(_ context.Context, _ int64) ([]*domain.Wall, error) {
	return f.walls, nil
}

func (f *fakePlanRepo) CreateWall(_ context.Context, w *domain.Wall) (*domain.Wall, error) {
	f.nextWallID++
	f.createdWalls++
	created := *w
	created.ID = f.nextWallID
	return &created, nil
}

func (f *fakePlanRepo) UpdateWall(_ context.Context, _ *domain.Wall) error {
	return nil
}

func (f *fakePlanRepo) DeleteWall(_ context.Context, id int64) error {
	f.deletedWalls = append(f.deletedWalls, id)
	return nil
}

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID:     1,
		Name:   "Main floor",
		Width:  domain.DefaultPlanWidth,
		Height: domain.DefaultPlanHeight,
	}
}

func newTestUseCase(repo *fakePlanRepo, client *fakeEmployeeClient) *UseCase {
	return NewUseCase(repo, client, passthroughTxManager{}, noopLogger{})
}

func adminClient() *fakeEmployeeClient {
	return &fakeEmployeeClient{admins: map[string]bool{"admin-1": true}}
}

func baseRequest() *Request {
	return &Request{
		UserID: "admin-1",
		PlanID: 1,
		Name:   "Main floor",
		Width:  domain.DefaultPlanWidth,
		Height: domain.DefaultPlanHeight,
	}
}

func TestExecute_PermissionCheckedBeforeAnyRepositoryCall(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	client := &fakeEmployeeClient{admins: map[string]bool{}}
	uc := newTestUseCase(repo, client)

	req := baseRequest()
	req.UserID = "user-1"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, repo.planUpdated)
	assert.Empty(t, repo.deletedDesks)
}

func TestExecute_DirectoryOutageFailsClosed(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	client := &fakeEmployeeClient{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, client)

	_, err := uc.Execute(context.Background(), baseRequest())

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, repo.planUpdated)
}

func TestExecute_CreatesDesksWithServerIDBackfill(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan(), nextDeskID: 100}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{
		{ID: -1, X: 0, Y: 0},
		{ID: -2, X: 200, Y: 200},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Desks, 2)
	assert.Equal(t, int64(-1), resp.Desks[0].ClientID)
	assert.Equal(t, int64(101), resp.Desks[0].ID)
	assert.Equal(t, int64(-2), resp.Desks[1].ClientID)
	assert.Equal(t, int64(102), resp.Desks[1].ID)
	assert.Equal(t, 2, repo.createdDesks)
}

func TestExecute_DuplicateTemporaryIDsGetDistinctServerIDs(t *testing.T) {
	// JSON без поля id дает обоим столам нулевой временный id;
	// каждый все равно должен получить собственный серверный id
	repo := &fakePlanRepo{plan: testPlan(), nextDeskID: 100}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{
		{ID: 0, X: 0, Y: 0},
		{ID: 0, X: 200, Y: 200},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, repo.createdDesks)
	require.Len(t, resp.Desks, 2)
	assert.Equal(t, int64(101), resp.Desks[0].ID)
	assert.Equal(t, int64(102), resp.Desks[1].ID)
	assert.NotEqual(t, resp.Desks[0].ID, resp.Desks[1].ID)
}

func TestExecute_DeletesDesksMissingFromDesiredState(t *testing.T) {
	repo := &fakePlanRepo{
		plan: testPlan(),
		desks: []*domain.Desk{
			{ID: 5, PlanID: 1, X: 0, Y: 0},
			{ID: 6, PlanID: 1, X: 200, Y: 200},
		},
	}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{{ID: 5, X: 0, Y: 0}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{6}, repo.deletedDesks)
	require.Len(t, resp.Desks, 1)
	assert.Equal(t, int64(5), resp.Desks[0].ID)
}

func TestExecute_UpdatesOnlyDesksWithChangedPlacement(t *testing.T) {
	repo := &fakePlanRepo{
		plan: testPlan(),
		desks: []*domain.Desk{
			{ID: 5, PlanID: 1, X: 0, Y: 0},
			{ID: 6, PlanID: 1, X: 200, Y: 200},
		},
	}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{
		{ID: 5, X: 0, Y: 0},      // без изменений
		{ID: 6, X: 400, Y: 200},  // переехал
	}

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{6}, repo.updatedDesks)
}

func TestExecute_UnknownDeskIDAbortsSync(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{{ID: 99, X: 0, Y: 0}}

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDeskNotFound)
	assert.Zero(t, repo.createdDesks)
}

func TestExecute_OverlappingDesiredLayoutRejected(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{
		{ID: -1, X: 0, Y: 0},
		{ID: -2, X: 20, Y: 20}, // внутри прямоугольника первого стола
	}

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDeskOverlap)
	assert.Zero(t, repo.createdDesks)
}

func TestExecute_SnapsDesiredPositionsToGrid(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{{ID: -1, X: 12, Y: 29}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Desks, 1)
	assert.Equal(t, 20, resp.Desks[0].X)
	assert.Equal(t, 20, resp.Desks[0].Y)
}

func TestExecute_PlanDimensionFailureAbortsBeforeObjectOps(t *testing.T) {
	repo := &fakePlanRepo{
		plan:          testPlan(),
		desks:         []*domain.Desk{{ID: 5, PlanID: 1, X: 0, Y: 0}},
		updatePlanErr: errors.New("deadlock detected"),
	}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	// Пустое желаемое состояние: без прерывания стол был бы удален
	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.deletedDesks)
}

func TestExecute_PlanIDMismatchIsNotFound(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.PlanID = 7

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestExecute_WallSyncCreatesAndDeletes(t *testing.T) {
	repo := &fakePlanRepo{
		plan:       testPlan(),
		walls:      []*domain.Wall{{ID: 3, PlanID: 1, X: 0, Y: 0, Width: 100, Height: 10}},
		nextWallID: 50,
	}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Walls = []WallState{{ID: -1, X: 300, Y: 300, Width: 100, Height: 10}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, repo.deletedWalls)
	require.Len(t, resp.Walls, 1)
	assert.Equal(t, int64(51), resp.Walls[0].ID)
	assert.Equal(t, int64(-1), resp.Walls[0].ClientID)
}

func TestExecute_RejectsInvalidRotation(t *testing.T) {
	repo := &fakePlanRepo{plan: testPlan()}
	uc := newTestUseCase(repo, adminClient())

	req := baseRequest()
	req.Desks = []DeskState{{ID: -1, X: 0, Y: 0, Rotation: 45}}

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
