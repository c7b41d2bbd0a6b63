package sync_plan

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// DeskState желаемое состояние стола. ID <= 0 означает временный
// клиентский идентификатор: стол еще не создан на сервере.
type DeskState struct {
	ID       int64
	X        int
	Y        int
	Rotation int
}

// WallState желаемое состояние стены
type WallState struct {
	ID     int64
	X      int
	Y      int
	Width  int
	Height int
}

// Request модель запроса синхронизации плана.
// Desks и Walls описывают желаемое состояние целиком: объекты,
// отсутствующие в запросе, удаляются с плана.
type Request struct {
	UserID string // Идентификатор пользователя из сессии
	PlanID int64

	Name    string
	Width   int
	Height  int
	OriginX int
	OriginY int

	Desks []DeskState
	Walls []WallState
}

// SyncedDesk стол после синхронизации. ClientID - идентификатор из
// запроса; для созданных столов он временный, и клиент по паре
// (ClientID, ID) подменяет его серверным.
type SyncedDesk struct {
	ClientID int64
	ID       int64
	X        int
	Y        int
	Rotation int
}

// SyncedWall стена после синхронизации
type SyncedWall struct {
	ClientID int64
	ID       int64
	X        int
	Y        int
	Width    int
	Height   int
}

// Response модель ответа: итоговое состояние плана с серверными id
type Response struct {
	Plan      domain.Plan
	Desks     []SyncedDesk
	Walls     []SyncedWall
	UpdatedAt time.Time
}
