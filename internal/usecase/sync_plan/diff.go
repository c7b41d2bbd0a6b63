package sync_plan

import (
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// deskDiff наборы операций над столами, сводящие серверное состояние
// к желаемому. Объекты с id <= 0 - ожидающие создания; серверные id,
// отсутствующие в желаемом состоянии, удаляются.
type deskDiff struct {
	toCreate []DeskState      // временные id, позиция уже нормализована
	toUpdate []*domain.Desk   // серверные объекты с примененной позицией
	toDelete []int64          // серверные id
}

// wallDiff наборы операций над стенами
type wallDiff struct {
	toCreate []WallState
	toUpdate []*domain.Wall
	toDelete []int64
}

// computeDeskDiff вычисляет операции над столами.
// Ссылка на неизвестный серверный id - ошибка: желаемое состояние
// построено на устаревшем снимке плана.
func computeDeskDiff(existing []*domain.Desk, desired []DeskState) (deskDiff, error) {
	var diff deskDiff

	existingByID := make(map[int64]*domain.Desk, len(existing))
	for _, d := range existing {
		existingByID[d.ID] = d
	}

	desiredIDs := make(map[int64]bool, len(desired))
	for _, state := range desired {
		if state.ID <= 0 {
			diff.toCreate = append(diff.toCreate, state)
			continue
		}

		current, ok := existingByID[state.ID]
		if !ok {
			return deskDiff{}, ErrDeskNotFound
		}
		desiredIDs[state.ID] = true

		candidate := &domain.Desk{
			ID:       current.ID,
			PlanID:   current.PlanID,
			X:        state.X,
			Y:        state.Y,
			Rotation: state.Rotation,
		}
		if !candidate.SamePlacement(current) {
			diff.toUpdate = append(diff.toUpdate, candidate)
		}
	}

	for _, d := range existing {
		if !desiredIDs[d.ID] {
			diff.toDelete = append(diff.toDelete, d.ID)
		}
	}

	return diff, nil
}

// computeWallDiff вычисляет операции над стенами по тем же правилам
func computeWallDiff(existing []*domain.Wall, desired []WallState) (wallDiff, error) {
	var diff wallDiff

	existingByID := make(map[int64]*domain.Wall, len(existing))
	for _, w := range existing {
		existingByID[w.ID] = w
	}

	desiredIDs := make(map[int64]bool, len(desired))
	for _, state := range desired {
		if state.ID <= 0 {
			diff.toCreate = append(diff.toCreate, state)
			continue
		}

		current, ok := existingByID[state.ID]
		if !ok {
			return wallDiff{}, ErrWallNotFound
		}
		desiredIDs[state.ID] = true

		candidate := &domain.Wall{
			ID:     current.ID,
			PlanID: current.PlanID,
			X:      state.X,
			Y:      state.Y,
			Width:  state.Width,
			Height: state.Height,
		}
		if !candidate.SamePlacement(current) {
			diff.toUpdate = append(diff.toUpdate, candidate)
		}
	}

	for _, w := range existing {
		if !desiredIDs[w.ID] {
			diff.toDelete = append(diff.toDelete, w.ID)
		}
	}

	return diff, nil
}
