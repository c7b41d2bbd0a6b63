package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeEmployeeClient struct {
	admins map[string]bool
	err    error
	calls  int
}

func (f *fakeEmployeeClient) IsAdmin(_ context.Context, userID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

type fakeReservationRepo struct {
	byID     map[int64]*domain.Reservation
	filtered []*domain.Reservation
	deleted  []int64
	updated  []int64

	filterIn domain.ReservationsFilter
	getCalls int
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	f.getCalls++
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.filterIn = filter
	return f.filtered, nil
}

func (f *fakeReservationRepo) UpdateDuration(_ context.Context, id int64, _ domain.Duration) error {
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

// Понедельник, 2025-06-09 10:00 UTC
var testNow = time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)

func ownReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          10,
		DeskID:      1,
		UserID:      "user-1",
		BookingDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Duration:    domain.DurationAM,
	}
}

func pastReservation() *domain.Reservation {
	r := ownReservation()
	r.BookingDate = time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	return r
}

func newService(repo *fakeReservationRepo, client *fakeEmployeeClient) *Service {
	svc := NewService(repo, client, noopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc
}

func TestGetByID_OwnerDoesNotHitDirectory(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	client := &fakeEmployeeClient{}
	svc := newService(repo, client)

	resp, err := svc.GetByID(context.Background(), 10, "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Zero(t, client.calls, "owner access must not require a directory lookup")
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	client := &fakeEmployeeClient{admins: map[string]bool{}}
	svc := newService(repo, client)

	_, err := svc.GetByID(context.Background(), 10, "user-2")

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesForeignReservation(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	client := &fakeEmployeeClient{admins: map[string]bool{"admin-1": true}}
	svc := newService(repo, client)

	resp, err := svc.GetByID(context.Background(), 10, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{}}
	svc := newService(repo, &fakeEmployeeClient{})

	_, err := svc.GetByID(context.Background(), 99, "user-1")

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetAllReservations_PermissionCheckedBeforeRepository(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeEmployeeClient{admins: map[string]bool{}}
	svc := newService(repo, client)

	_, err := svc.GetAllReservations(context.Background(), &models.GetReservationsRequest{UserID: "user-1"})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.filterIn.UserID)
	assert.Equal(t, 1, client.calls)
}

func TestGetAllReservations_DirectoryOutageFailsClosed(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeEmployeeClient{err: errors.New("timeout")}
	svc := newService(repo, client)

	_, err := svc.GetAllReservations(context.Background(), &models.GetReservationsRequest{UserID: "admin-1"})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations_OwnListWithoutDirectory(t *testing.T) {
	repo := &fakeReservationRepo{filtered: []*domain.Reservation{ownReservation()}}
	client := &fakeEmployeeClient{}
	svc := newService(repo, client)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:       "user-1",
		TargetUserID: "user-1",
	})

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Zero(t, client.calls)
	require.NotNil(t, repo.filterIn.UserID)
	assert.Equal(t, "user-1", *repo.filterIn.UserID)
}

func TestGetUserReservations_ForeignListRequiresAdmin(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeEmployeeClient{admins: map[string]bool{}}
	svc := newService(repo, client)

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:       "user-2",
		TargetUserID: "user-1",
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateDuration_OwnerUpdates(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	svc := newService(repo, &fakeEmployeeClient{})

	resp, err := svc.UpdateDuration(context.Background(), 10, &models.UpdateDurationRequest{
		UserID:   "user-1",
		Duration: "FULL",
	})

	require.NoError(t, err)
	assert.Equal(t, "FULL", resp.Duration)
	assert.Equal(t, []int64{10}, repo.updated)
}

func TestUpdateDuration_InvalidDurationRejectedBeforeRepository(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	svc := newService(repo, &fakeEmployeeClient{})

	_, err := svc.UpdateDuration(context.Background(), 10, &models.UpdateDurationRequest{
		UserID:   "user-1",
		Duration: "EVENING",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.getCalls)
	assert.Empty(t, repo.updated)
}

func TestUpdateDuration_PastReservationIsImmutable(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: pastReservation()}}
	svc := newService(repo, &fakeEmployeeClient{})

	_, err := svc.UpdateDuration(context.Background(), 10, &models.UpdateDurationRequest{
		UserID:   "user-1",
		Duration: "FULL",
	})

	require.ErrorIs(t, err, ErrPastReservation)
	assert.Empty(t, repo.updated)
}

func TestUpdateDuration_TodayIsStillMutable(t *testing.T) {
	today := ownReservation()
	today.BookingDate = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: today}}
	svc := newService(repo, &fakeEmployeeClient{})

	_, err := svc.UpdateDuration(context.Background(), 10, &models.UpdateDurationRequest{
		UserID:   "user-1",
		Duration: "FULL",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.updated)
}

func TestCancel_OwnerCancels(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	svc := newService(repo, &fakeEmployeeClient{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deleted)
}

func TestCancel_StrangerDeniedBeforeDelete(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	client := &fakeEmployeeClient{admins: map[string]bool{}}
	svc := newService(repo, client)

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: "user-2"})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestCancel_PastReservationIsImmutable(t *testing.T) {
	// Даже владелец не может отменить бронирование на прошедшую дату
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: pastReservation()}}
	svc := newService(repo, &fakeEmployeeClient{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: "user-1"})

	require.ErrorIs(t, err, ErrPastReservation)
	assert.Empty(t, repo.deleted)
}

func TestCancel_PastReservationImmutableForAdminToo(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: pastReservation()}}
	client := &fakeEmployeeClient{admins: map[string]bool{"admin-1": true}}
	svc := newService(repo, client)

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: "admin-1"})

	require.ErrorIs(t, err, ErrPastReservation)
	assert.Empty(t, repo.deleted)
}

func TestCancel_AdminCancelsForeignReservation(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{10: ownReservation()}}
	client := &fakeEmployeeClient{admins: map[string]bool{"admin-1": true}}
	svc := newService(repo, client)

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: "admin-1"})

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deleted)
}
