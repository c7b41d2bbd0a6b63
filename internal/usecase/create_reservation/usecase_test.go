package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/employeeservice"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeClient struct {
	degraded bool
}

func (f *fakeEmployeeClient) GetEmployeeWithGracefulDegradation(_ context.Context, userID string) (*employeeservice.Employee, error) {
	if f.degraded {
		return nil, employeeservice.ErrServiceDegraded
	}
	return &employeeservice.Employee{ID: userID, FullName: "Ivan Petrov"}, nil
}

type fakePlanRepo struct{}

func (fakePlanRepo) GetDeskByID(_ context.Context, id int64) (*domain.Desk, error) {
	if id == 7 {
		return &domain.Desk{ID: 7, PlanID: 1}, nil
	}
	return nil, planRepo.ErrDeskNotFound
}

type fakeReservationRepo struct {
	existing  []*domain.Reservation
	createErr error
	created   []*domain.Reservation
	nextID    int64
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	out := *res
	out.ID = f.nextID
	f.created = append(f.created, &out)
	return &out, nil
}

// Понедельник, 2025-06-09 10:00 UTC
var testNow = time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeReservationRepo, client *fakeEmployeeClient) *UseCase {
	uc := NewUseCase(repo, fakePlanRepo{}, client, passthroughTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func request(d time.Time) *Request {
	return &Request{UserID: "user-1", DeskID: 7, Date: d, Duration: domain.DurationFull}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeEmployeeClient{})

	resp, err := uc.Execute(context.Background(), request(date(2025, time.June, 10)))

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ivan Petrov", resp.EmployeeDisplayName)
	assert.Equal(t, domain.DurationFull, resp.Duration)
	require.Len(t, repo.created, 1)
	assert.Equal(t, date(2025, time.June, 10), repo.created[0].BookingDate)
}

func TestExecute_DirectoryOutageStillCreates(t *testing.T) {
	// Недоступный каталог не блокирует бронирование,
	// display name остается пустым
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeEmployeeClient{degraded: true})

	resp, err := uc.Execute(context.Background(), request(date(2025, time.June, 10)))

	require.NoError(t, err)
	assert.Empty(t, resp.EmployeeDisplayName)
}

func TestExecute_WindowBounds(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		err  error
	}{
		{"today is bookable", date(2025, time.June, 9), nil},
		{"last day of window is bookable", date(2025, time.June, 23), nil},
		{"yesterday is in the past", date(2025, time.June, 8), ErrDateInPast},
		{"day past the window", date(2025, time.June, 24), ErrDateOutsideWindow},
		{"saturday inside the window", date(2025, time.June, 14), ErrWeekendDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeEmployeeClient{})

			_, err := uc.Execute(context.Background(), request(tt.date))

			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestExecute_DeskNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeEmployeeClient{})

	req := request(date(2025, time.June, 10))
	req.DeskID = 99

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDeskNotFound)
}

func TestExecute_DeskTakenOnPreflight(t *testing.T) {
	repo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 5, DeskID: 7, UserID: "user-2", BookingDate: date(2025, time.June, 10)},
	}}
	uc := newTestUseCase(repo, &fakeEmployeeClient{})

	_, err := uc.Execute(context.Background(), request(date(2025, time.June, 10)))

	require.ErrorIs(t, err, ErrDeskAlreadyReserved)
	assert.Empty(t, repo.created)
}

func TestExecute_UniqueViolationMapsToConflict(t *testing.T) {
	// Гонка, просочившаяся мимо выборки: вставка упирается
	// в уникальный индекс, проигравший получает конфликт
	tests := []struct {
		name       string
		storageErr error
		want       error
	}{
		{"desk slot taken", reservationRepo.ErrDeskAlreadyReserved, ErrDeskAlreadyReserved},
		{"user day taken", reservationRepo.ErrUserDayTaken, ErrUserDayTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{createErr: tt.storageErr}
			uc := newTestUseCase(repo, &fakeEmployeeClient{})

			_, err := uc.Execute(context.Background(), request(date(2025, time.June, 10)))

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeEmployeeClient{})

	req := request(date(2025, time.June, 10))
	req.Duration = domain.Duration("EVENING")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
