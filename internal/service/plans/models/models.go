package models

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Request модели

// CreatePlanRequest запрос на создание плана этажа
type CreatePlanRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"originX"`
	OriginY int    `json:"originY"`
}

// UpdatePlanRequest запрос на обновление плана этажа
type UpdatePlanRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"originX"`
	OriginY int    `json:"originY"`
}

// Response модели

// DeskResponse стол плана
type DeskResponse struct {
	ID       int64 `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Rotation int   `json:"rotation"`
}

// WallResponse стена плана
type WallResponse struct {
	ID     int64 `json:"id"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
}

// PlanResponse ответ с планом этажа и его объектами.
// GridSize и габариты стола отдаются клиенту, чтобы рендеринг
// использовал те же константы, что серверная привязка к сетке.
type PlanResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"originX"`
	OriginY int    `json:"originY"`

	GridSize   int `json:"gridSize"`
	DeskWidth  int `json:"deskWidth"`
	DeskHeight int `json:"deskHeight"`

	Desks []DeskResponse `json:"desks"`
	Walls []WallResponse `json:"walls"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainPlan конвертирует domain модели в DTO
func FromDomainPlan(p *domain.Plan, desks []*domain.Desk, walls []*domain.Wall) *PlanResponse {
	if p == nil {
		return nil
	}

	resp := &PlanResponse{
		ID:         p.ID,
		Name:       p.Name,
		Width:      p.Width,
		Height:     p.Height,
		OriginX:    p.OriginX,
		OriginY:    p.OriginY,
		GridSize:   domain.GridSize,
		DeskWidth:  domain.DeskWidth,
		DeskHeight: domain.DeskHeight,
		Desks:      make([]DeskResponse, 0, len(desks)),
		Walls:      make([]WallResponse, 0, len(walls)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	for _, d := range desks {
		resp.Desks = append(resp.Desks, DeskResponse{
			ID:       d.ID,
			X:        d.X,
			Y:        d.Y,
			Rotation: d.Rotation,
		})
	}

	for _, w := range walls {
		resp.Walls = append(resp.Walls, WallResponse{
			ID:     w.ID,
			X:      w.X,
			Y:      w.Y,
			Width:  w.Width,
			Height: w.Height,
		})
	}

	return resp
}
