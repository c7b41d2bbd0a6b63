package get_desk_availability

import (
	"strings"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// actorIdentity данные спрашивающего для сопоставления владения бронью
type actorIdentity struct {
	UserID   string
	FullName string // пусто, если каталог сотрудников недоступен
	Email    string // пусто, если каталог сотрудников недоступен
}

// isOwnReservation проверяет, принадлежит ли бронирование спрашивающему.
//
// Записи бронирований не всегда содержат нормализованный идентификатор,
// поэтому сопоставление идет по трем стратегиям строго по порядку:
//  1. точное совпадение userId;
//  2. регистронезависимое вхождение полного имени в display name записи;
//  3. то же для email.
//
// Каждая следующая стратегия строго слабее предыдущей и применяется
// только если предыдущие не дали совпадения. Порядок менять нельзя.
func isOwnReservation(res *domain.Reservation, actor actorIdentity) bool {
	// Стратегия 1: точный userId
	if res.UserID != "" && res.UserID == actor.UserID {
		return true
	}

	displayName := strings.ToLower(res.EmployeeDisplayName)

	// Стратегия 2: вхождение полного имени
	if actor.FullName != "" && strings.Contains(displayName, strings.ToLower(actor.FullName)) {
		return true
	}

	// Стратегия 3: вхождение email
	if actor.Email != "" && strings.Contains(displayName, strings.ToLower(actor.Email)) {
		return true
	}

	return false
}
