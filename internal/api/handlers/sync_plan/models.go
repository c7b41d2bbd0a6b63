package sync_plan

import (
	"time"

	syncPlan "github.com/m04kA/SMC-WorkplaceService/internal/usecase/sync_plan"
)

// DeskStateRequest желаемое состояние стола. Отрицательный id -
// временный клиентский идентификатор еще не созданного стола.
type DeskStateRequest struct {
	ID       int64 `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Rotation int   `json:"rotation"`
}

// WallStateRequest желаемое состояние стены
type WallStateRequest struct {
	ID     int64 `json:"id"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
}

// SyncPlanRequest HTTP request model: желаемое состояние плана целиком
type SyncPlanRequest struct {
	Name    string             `json:"name"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	OriginX int                `json:"originX"`
	OriginY int                `json:"originY"`
	Desks   []DeskStateRequest `json:"desks"`
	Walls   []WallStateRequest `json:"walls"`
}

// SyncedDeskResponse стол после синхронизации: серверный id вместе
// с клиентским для подмены временных идентификаторов
type SyncedDeskResponse struct {
	ClientID int64 `json:"clientId"`
	ID       int64 `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Rotation int   `json:"rotation"`
}

// SyncedWallResponse стена после синхронизации
type SyncedWallResponse struct {
	ClientID int64 `json:"clientId"`
	ID       int64 `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Width    int   `json:"width"`
	Height   int   `json:"height"`
}

// SyncPlanResponse HTTP response model
type SyncPlanResponse struct {
	PlanID    int64                `json:"planId"`
	Desks     []SyncedDeskResponse `json:"desks"`
	Walls     []SyncedWallResponse `json:"walls"`
	UpdatedAt string               `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SyncPlanRequest) ToUseCaseRequest(userID string, planID int64) *syncPlan.Request {
	req := &syncPlan.Request{
		UserID:  userID,
		PlanID:  planID,
		Name:    r.Name,
		Width:   r.Width,
		Height:  r.Height,
		OriginX: r.OriginX,
		OriginY: r.OriginY,
		Desks:   make([]syncPlan.DeskState, 0, len(r.Desks)),
		Walls:   make([]syncPlan.WallState, 0, len(r.Walls)),
	}

	for _, d := range r.Desks {
		req.Desks = append(req.Desks, syncPlan.DeskState{
			ID:       d.ID,
			X:        d.X,
			Y:        d.Y,
			Rotation: d.Rotation,
		})
	}

	for _, w := range r.Walls {
		req.Walls = append(req.Walls, syncPlan.WallState{
			ID:     w.ID,
			X:      w.X,
			Y:      w.Y,
			Width:  w.Width,
			Height: w.Height,
		})
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncPlan.Response) *SyncPlanResponse {
	out := &SyncPlanResponse{
		PlanID:    resp.Plan.ID,
		Desks:     make([]SyncedDeskResponse, 0, len(resp.Desks)),
		Walls:     make([]SyncedWallResponse, 0, len(resp.Walls)),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	for _, d := range resp.Desks {
		out.Desks = append(out.Desks, SyncedDeskResponse{
			ClientID: d.ClientID,
			ID:       d.ID,
			X:        d.X,
			Y:        d.Y,
			Rotation: d.Rotation,
		})
	}

	for _, w := range resp.Walls {
		out.Walls = append(out.Walls, SyncedWallResponse{
			ClientID: w.ClientID,
			ID:       w.ID,
			X:        w.X,
			Y:        w.Y,
			Width:    w.Width,
			Height:   w.Height,
		})
	}

	return out
}
