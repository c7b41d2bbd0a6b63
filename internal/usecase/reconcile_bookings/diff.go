package reconcile_bookings

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// sessionDiff три непересекающихся набора операций, сводящих серверное
// состояние к желаемому выбору:
//
//	toCreate         = selected \ initial
//	toDelete         = initial \ selected
//	toUpdateDuration = {d из пересечения: длительность отличается от новой}
//
// Вместе наборы покрывают initial и selected полностью:
// toCreate + пересечение = selected, toDelete + пересечение = initial.
type sessionDiff struct {
	toCreate         []time.Time
	toDelete         []*domain.Reservation
	toUpdateDuration []*domain.Reservation
}

// isEmpty сообщает, что сверка не требует ни одной операции
func (d sessionDiff) isEmpty() bool {
	return len(d.toCreate) == 0 && len(d.toDelete) == 0 && len(d.toUpdateDuration) == 0
}

// operationCount общее число операций сессии
func (d sessionDiff) operationCount() int {
	return len(d.toCreate) + len(d.toDelete) + len(d.toUpdateDuration)
}

// sanitizeSelection убирает из выбора даты, занятые другими сотрудниками.
// Такая дата не может быть выбрана; её присутствие - признак устаревшего
// снимка доступности, и она выбрасывается до вычисления diff.
func sanitizeSelection(selection []time.Time, blocked map[time.Time]bool) []time.Time {
	clean := make([]time.Time, 0, len(selection))
	for _, d := range selection {
		if !blocked[domain.DateOnly(d)] {
			clean = append(clean, d)
		}
	}
	return clean
}

// computeDiff вычисляет минимальный набор операций.
// initial - бронирования пользователя за этим столом до начала сессии,
// selected - желаемый набор дат, newDuration - длительность сессии.
// Дубликаты в selected схлопываются; порядок дат в наборах стабилен
// (по возрастанию исходного порядка обхода).
func computeDiff(initial []*domain.Reservation, selected []time.Time, newDuration domain.Duration) sessionDiff {
	initialByDate := make(map[time.Time]*domain.Reservation, len(initial))
	for _, res := range initial {
		initialByDate[domain.DateOnly(res.BookingDate)] = res
	}

	selectedSet := make(map[time.Time]bool, len(selected))
	orderedSelected := make([]time.Time, 0, len(selected))
	for _, d := range selected {
		date := domain.DateOnly(d)
		if !selectedSet[date] {
			selectedSet[date] = true
			orderedSelected = append(orderedSelected, date)
		}
	}

	var diff sessionDiff

	// selected \ initial -> создать
	for _, date := range orderedSelected {
		if _, exists := initialByDate[date]; !exists {
			diff.toCreate = append(diff.toCreate, date)
		}
	}

	// initial \ selected -> удалить; пересечение с другой длительностью -> обновить
	for _, res := range initial {
		date := domain.DateOnly(res.BookingDate)
		if !selectedSet[date] {
			diff.toDelete = append(diff.toDelete, res)
			continue
		}
		if res.Duration != newDuration {
			diff.toUpdateDuration = append(diff.toUpdateDuration, res)
		}
	}

	return diff
}
