package get_desk_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

func TestIsOwnReservation_ExactUserIDWins(t *testing.T) {
	res := &domain.Reservation{UserID: "user-1", EmployeeDisplayName: "Кто-то другой"}
	actor := actorIdentity{UserID: "user-1"}

	assert.True(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_UserIDMismatchFallsThroughToName(t *testing.T) {
	// Запись без нормализованного userId, но display name содержит
	// полное имя спрашивающего
	res := &domain.Reservation{UserID: "", EmployeeDisplayName: "Забронировано: Ivan Petrov (отдел продаж)"}
	actor := actorIdentity{UserID: "user-1", FullName: "ivan petrov"}

	assert.True(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_NameMatchIsCaseInsensitive(t *testing.T) {
	res := &domain.Reservation{EmployeeDisplayName: "IVAN PETROV"}
	actor := actorIdentity{UserID: "user-1", FullName: "Ivan Petrov"}

	assert.True(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_EmailIsLastResort(t *testing.T) {
	res := &domain.Reservation{EmployeeDisplayName: "ivan.petrov@example.com"}
	actor := actorIdentity{UserID: "user-1", FullName: "Ivan Petrov", Email: "ivan.petrov@example.com"}

	assert.True(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_DegradedIdentityMatchesByIDOnly(t *testing.T) {
	// Каталог недоступен: FullName и Email пустые, остаётся только userId
	res := &domain.Reservation{UserID: "user-2", EmployeeDisplayName: "Ivan Petrov"}
	actor := actorIdentity{UserID: "user-1"}

	assert.False(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_EmptyActorFieldsNeverMatch(t *testing.T) {
	// Пустые строки не должны давать ложное вхождение
	res := &domain.Reservation{UserID: "", EmployeeDisplayName: "Ivan Petrov"}
	actor := actorIdentity{UserID: "user-1"}

	assert.False(t, isOwnReservation(res, actor))
}

func TestIsOwnReservation_NoMatch(t *testing.T) {
	res := &domain.Reservation{UserID: "user-2", EmployeeDisplayName: "Anna Sidorova"}
	actor := actorIdentity{UserID: "user-1", FullName: "Ivan Petrov", Email: "ivan@example.com"}

	assert.False(t, isOwnReservation(res, actor))
}
