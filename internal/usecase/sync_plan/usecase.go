package sync_plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	"github.com/m04kA/SMC-WorkplaceService/internal/layout"
)

// UseCase use case синхронизации плана этажа.
// Принимает желаемое состояние плана целиком (размеры, столы, стены)
// и сводит к нему серверное состояние внутри одной транзакции:
// обновление размеров плана, затем удаления, обновления и создания.
// Созданным объектам в ответе проставляются серверные id.
type UseCase struct {
	planRepo       PlanRepository
	employeeClient EmployeeServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	planRepo PlanRepository,
	employeeClient EmployeeServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		planRepo:       planRepo,
		employeeClient: employeeClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет синхронизацию плана.
// Право администратора проверяется до любых обращений к хранилищу;
// при недоступности каталога сотрудников запрос отклоняется (fail closed).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncPlan: user=%s, plan=%d, desks=%d, walls=%d",
		req.UserID, req.PlanID, len(req.Desks), len(req.Walls))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SyncPlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка прав до любых операций над хранилищем
	isAdmin, err := uc.employeeClient.IsAdmin(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("SyncPlan: admin check failed for user=%s: %v", req.UserID, err)
		return nil, ErrPermissionDenied
	}
	if !isAdmin {
		uc.logger.Warn("SyncPlan: user=%s is not an admin", req.UserID)
		return nil, ErrPermissionDenied
	}

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		resp, txErr = uc.sync(txCtx, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SyncPlan: plan=%d synchronized, desks=%d, walls=%d",
		resp.Plan.ID, len(resp.Desks), len(resp.Walls))

	return resp, nil
}

func (uc *UseCase) sync(ctx context.Context, req *Request) (*Response, error) {
	// 1. Загружаем план и сверяем id
	plan, err := uc.planRepo.GetPlan(ctx)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		uc.logger.Error("SyncPlan: failed to load plan: %v", err)
		return nil, fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
	}
	if plan.ID != req.PlanID {
		return nil, ErrPlanNotFound
	}

	// 2. Обновление размеров плана идет первым: его неудача прерывает
	// синхронизацию до каких-либо операций над объектами
	plan.Name = req.Name
	plan.Width = req.Width
	plan.Height = req.Height
	plan.OriginX = req.OriginX
	plan.OriginY = req.OriginY
	plan.OwnerID = req.UserID

	if err := uc.planRepo.UpdatePlan(ctx, plan); err != nil {
		uc.logger.Error("SyncPlan: failed to update plan dimensions: %v", err)
		return nil, fmt.Errorf("%w: failed to update plan: %v", ErrInternal, err)
	}

	// 3. Нормализуем желаемое размещение и проверяем пересечения столов
	desiredDesks := normalizeDesks(plan, req.Desks)
	if hasOverlap(desiredDesks) {
		return nil, ErrDeskOverlap
	}
	desiredWalls := normalizeWalls(plan, req.Walls)

	// 4. Столы: удаления, обновления, создания с проставлением id
	syncedDesks, err := uc.syncDesks(ctx, plan, desiredDesks)
	if err != nil {
		return nil, err
	}

	// 5. Стены: та же дисциплина
	syncedWalls, err := uc.syncWalls(ctx, plan, desiredWalls)
	if err != nil {
		return nil, err
	}

	return &Response{
		Plan:      *plan,
		Desks:     syncedDesks,
		Walls:     syncedWalls,
		UpdatedAt: plan.UpdatedAt,
	}, nil
}

func (uc *UseCase) syncDesks(ctx context.Context, plan *domain.Plan, desired []DeskState) ([]SyncedDesk, error) {
	existing, err := uc.planRepo.ListDesksByPlan(ctx, plan.ID)
	if err != nil {
		uc.logger.Error("SyncPlan: failed to list desks: %v", err)
		return nil, fmt.Errorf("%w: failed to list desks: %v", ErrInternal, err)
	}

	diff, err := computeDeskDiff(existing, desired)
	if err != nil {
		return nil, err
	}

	for _, id := range diff.toDelete {
		if err := uc.planRepo.DeleteDesk(ctx, id); err != nil {
			uc.logger.Error("SyncPlan: failed to delete desk id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to delete desk: %v", ErrInternal, err)
		}
	}

	for _, d := range diff.toUpdate {
		if err := uc.planRepo.UpdateDesk(ctx, d); err != nil {
			uc.logger.Error("SyncPlan: failed to update desk id=%d: %v", d.ID, err)
			return nil, fmt.Errorf("%w: failed to update desk: %v", ErrInternal, err)
		}
	}

	// diff.toCreate повторяет порядок ожидающих создания столов в запросе,
	// поэтому серверные id подставляются позиционно: клиентские временные
	// id могут совпадать (нулевые id из JSON)
	createdIDs := make([]int64, 0, len(diff.toCreate))
	for _, state := range diff.toCreate {
		created, err := uc.planRepo.CreateDesk(ctx, &domain.Desk{
			PlanID:   plan.ID,
			X:        state.X,
			Y:        state.Y,
			Rotation: state.Rotation,
		})
		if err != nil {
			uc.logger.Error("SyncPlan: failed to create desk: %v", err)
			return nil, fmt.Errorf("%w: failed to create desk: %v", ErrInternal, err)
		}
		createdIDs = append(createdIDs, created.ID)
	}

	// Ответ повторяет порядок запроса; созданным столам подставлен
	// серверный id при сохраненном клиентском
	synced := make([]SyncedDesk, 0, len(desired))
	nextCreated := 0
	for _, state := range desired {
		serverID := state.ID
		if state.ID <= 0 {
			serverID = createdIDs[nextCreated]
			nextCreated++
		}
		synced = append(synced, SyncedDesk{
			ClientID: state.ID,
			ID:       serverID,
			X:        state.X,
			Y:        state.Y,
			Rotation: state.Rotation,
		})
	}

	return synced, nil
}

func (uc *UseCase) syncWalls(ctx context.Context, plan *domain.Plan, desired []WallState) ([]SyncedWall, error) {
	existing, err := uc.planRepo.ListWallsByPlan(ctx, plan.ID)
	if err != nil {
		uc.logger.Error("SyncPlan: failed to list walls: %v", err)
		return nil, fmt.Errorf("%w: failed to list walls: %v", ErrInternal, err)
	}

	diff, err := computeWallDiff(existing, desired)
	if err != nil {
		return nil, err
	}

	for _, id := range diff.toDelete {
		if err := uc.planRepo.DeleteWall(ctx, id); err != nil {
			uc.logger.Error("SyncPlan: failed to delete wall id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to delete wall: %v", ErrInternal, err)
		}
	}

	for _, w := range diff.toUpdate {
		if err := uc.planRepo.UpdateWall(ctx, w); err != nil {
			uc.logger.Error("SyncPlan: failed to update wall id=%d: %v", w.ID, err)
			return nil, fmt.Errorf("%w: failed to update wall: %v", ErrInternal, err)
		}
	}

	createdIDs := make([]int64, 0, len(diff.toCreate))
	for _, state := range diff.toCreate {
		created, err := uc.planRepo.CreateWall(ctx, &domain.Wall{
			PlanID: plan.ID,
			X:      state.X,
			Y:      state.Y,
			Width:  state.Width,
			Height: state.Height,
		})
		if err != nil {
			uc.logger.Error("SyncPlan: failed to create wall: %v", err)
			return nil, fmt.Errorf("%w: failed to create wall: %v", ErrInternal, err)
		}
		createdIDs = append(createdIDs, created.ID)
	}

	synced := make([]SyncedWall, 0, len(desired))
	nextCreated := 0
	for _, state := range desired {
		serverID := state.ID
		if state.ID <= 0 {
			serverID = createdIDs[nextCreated]
			nextCreated++
		}
		synced = append(synced, SyncedWall{
			ClientID: state.ID,
			ID:       serverID,
			X:        state.X,
			Y:        state.Y,
			Width:    state.Width,
			Height:   state.Height,
		})
	}

	return synced, nil
}

// normalizeDesks приводит позиции столов к сетке и границам плана
func normalizeDesks(plan *domain.Plan, desks []DeskState) []DeskState {
	normalized := make([]DeskState, len(desks))
	for i, d := range desks {
		x, y := layout.NormalizeDeskPosition(plan, d.X, d.Y)
		normalized[i] = DeskState{ID: d.ID, X: x, Y: y, Rotation: d.Rotation}
	}
	return normalized
}

// normalizeWalls приводит позиции и размеры стен к половинной сетке
func normalizeWalls(plan *domain.Plan, walls []WallState) []WallState {
	normalized := make([]WallState, len(walls))
	for i, w := range walls {
		x, y, width, height := layout.NormalizeWallPlacement(plan, w.X, w.Y, w.Width, w.Height)
		normalized[i] = WallState{ID: w.ID, X: x, Y: y, Width: width, Height: height}
	}
	return normalized
}

// hasOverlap проверяет попарные пересечения столов желаемого размещения
func hasOverlap(desks []DeskState) bool {
	for i := 0; i < len(desks); i++ {
		for j := i + 1; j < len(desks); j++ {
			a := &domain.Desk{X: desks[i].X, Y: desks[i].Y}
			b := &domain.Desk{X: desks[j].X, Y: desks[j].Y}
			if layout.DesksOverlap(a, b) {
				return true
			}
		}
	}
	return false
}
