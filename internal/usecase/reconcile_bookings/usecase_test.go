package reconcile_bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	createReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeReservationRepo потокобезопасный фейк репозитория бронирований
type fakeReservationRepo struct {
	mu       sync.Mutex
	initial  []*domain.Reservation
	deleted  []int64
	updated  []int64
	failIDs  map[int64]error
	filterIn domain.ReservationsFilter
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filterIn = filter
	return f.initial, nil
}

func (f *fakeReservationRepo) UpdateDuration(_ context.Context, id int64, _ domain.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeCreator потокобезопасный фейк создателя бронирований
type fakeCreator struct {
	mu        sync.Mutex
	nextID    int64
	failDates map[time.Time]error
	created   []time.Time
}

func (f *fakeCreator) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failDates[domain.DateOnly(req.Date)]; ok {
		return nil, err
	}
	f.nextID++
	f.created = append(f.created, domain.DateOnly(req.Date))
	return &createReservation.Response{
		ID:       f.nextID,
		DeskID:   req.DeskID,
		UserID:   req.UserID,
		Duration: req.Duration,
	}, nil
}

// Понедельник, все тестовые даты - будни внутри окна бронирования
var testNow = time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeReservationRepo, creator *fakeCreator) *UseCase {
	uc := NewUseCase(repo, creator, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_NoOpWhenStateMatchesSelection(t *testing.T) {
	tue := date(2025, time.June, 10)
	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{reservation(10, tue, domain.DurationFull)},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue},
		Duration:      domain.DurationFull,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoOp, resp.Outcome)
	assert.Zero(t, resp.Total)
	assert.Empty(t, creator.created)
	assert.Empty(t, repo.deleted)
}

func TestExecute_CreateAndUpdateAllSuccess(t *testing.T) {
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)
	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{reservation(10, tue, domain.DurationAM)},
	}
	creator := &fakeCreator{nextID: 100}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue, wed},
		Duration:      domain.DurationFull,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllSuccess, resp.Outcome)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Zero(t, resp.Failed)

	assert.Equal(t, []time.Time{wed}, creator.created)
	assert.Equal(t, []int64{10}, repo.updated)
	assert.Empty(t, repo.deleted)
}

func TestExecute_CancelAllRequiresConfirmation(t *testing.T) {
	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{reservation(10, date(2025, time.June, 10), domain.DurationAM)},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   "user-1",
		DeskID:   1,
		Duration: domain.DurationAM,
	})

	require.ErrorIs(t, err, ErrCancelAllNotConfirmed)
	assert.Empty(t, repo.deleted, "no operation may start before confirmation")
}

func TestExecute_CancelAllWithConfirmation(t *testing.T) {
	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{
			reservation(10, date(2025, time.June, 10), domain.DurationAM),
			reservation(11, date(2025, time.June, 11), domain.DurationFull),
		},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           "user-1",
		DeskID:           1,
		Duration:         domain.DurationAM,
		ConfirmCancelAll: true,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllSuccess, resp.Outcome)
	assert.ElementsMatch(t, []int64{10, 11}, repo.deleted)
}

func TestExecute_EmptySelectionEmptyStateIsNoOp(t *testing.T) {
	repo := &fakeReservationRepo{}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   "user-1",
		DeskID:   1,
		Duration: domain.DurationAM,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoOp, resp.Outcome)
}

func TestExecute_PartialSuccessIsNeverAllSuccess(t *testing.T) {
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)
	thu := date(2025, time.June, 12)

	repo := &fakeReservationRepo{}
	creator := &fakeCreator{
		failDates: map[time.Time]error{
			wed: createReservation.ErrDeskAlreadyReserved,
		},
	}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue, wed, thu},
		Duration:      domain.DurationFull,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomePartialSuccess, resp.Outcome)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	var failed []OperationResult
	for _, r := range resp.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, OperationCreate, failed[0].Type)
	assert.Equal(t, wed, failed[0].Date)
	assert.NotEmpty(t, failed[0].Reason)
}

func TestExecute_AllOperationsFailed(t *testing.T) {
	tue := date(2025, time.June, 10)

	repo := &fakeReservationRepo{}
	creator := &fakeCreator{
		failDates: map[time.Time]error{
			tue: createReservation.ErrUserDayTaken,
		},
	}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue},
		Duration:      domain.DurationAM,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllFailed, resp.Outcome)
	assert.Equal(t, 1, resp.Failed)
	assert.Zero(t, resp.Succeeded)
}

func TestExecute_SingleDayViolationBlocksSession(t *testing.T) {
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)

	repo := &fakeReservationRepo{}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue, wed},
		Duration:      domain.DurationAM,
		SingleDayDate: &tue,
	})

	require.ErrorIs(t, err, ErrSingleDayViolation)
	assert.Empty(t, creator.created)
}

func TestExecute_SingleDayScopeProtectsOtherDays(t *testing.T) {
	// В дневном виде пустой выбор отменяет только просматриваемый день,
	// бронирования на другие даты остаются нетронутыми
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)

	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{
			reservation(10, tue, domain.DurationAM),
			reservation(11, wed, domain.DurationAM),
		},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           "user-1",
		DeskID:           1,
		Duration:         domain.DurationAM,
		SingleDayDate:    &tue,
		ConfirmCancelAll: true,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllSuccess, resp.Outcome)
	assert.Equal(t, []int64{10}, repo.deleted)
}

func TestExecute_RejectsDateOutsideWindow(t *testing.T) {
	farFuture := date(2025, time.July, 15)

	repo := &fakeReservationRepo{}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{farFuture},
		Duration:      domain.DurationAM,
	})

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsInvalidDuration(t *testing.T) {
	repo := &fakeReservationRepo{}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{date(2025, time.June, 10)},
		Duration:      domain.Duration("EVENING"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_LoadsDeskStateScopedToWindow(t *testing.T) {
	// Запрашивается состояние стола целиком: чужие бронирования нужны,
	// чтобы выбросить занятые даты из выбора
	repo := &fakeReservationRepo{}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-7",
		DeskID:        42,
		SelectedDates: []time.Time{date(2025, time.June, 10)},
		Duration:      domain.DurationAM,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.filterIn.DeskID)
	assert.Equal(t, int64(42), *repo.filterIn.DeskID)
	assert.Nil(t, repo.filterIn.UserID)
	require.NotNil(t, repo.filterIn.StartDate)
	assert.Equal(t, date(2025, time.June, 9), *repo.filterIn.StartDate)
	require.NotNil(t, repo.filterIn.EndDate)
	assert.Equal(t, date(2025, time.June, 23), *repo.filterIn.EndDate)
}

func TestExecute_ForeignDatesDroppedFromSelection(t *testing.T) {
	// Среда занята другим сотрудником: выбор построен на устаревшем
	// снимке доступности. Дата выбрасывается до diff - ни create
	// для среды, ни каких-либо операций над чужим бронированием.
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)

	foreign := reservation(20, wed, domain.DurationFull)
	foreign.UserID = "user-2"

	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{
			reservation(10, tue, domain.DurationAM),
			foreign,
		},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        "user-1",
		DeskID:        1,
		SelectedDates: []time.Time{tue, wed},
		Duration:      domain.DurationFull,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllSuccess, resp.Outcome)
	assert.Equal(t, 1, resp.Total)
	assert.Empty(t, creator.created)
	assert.Equal(t, []int64{10}, repo.updated)
	assert.Empty(t, repo.deleted)
}

func TestExecute_ForeignReservationsNeverDeleted(t *testing.T) {
	// Чужое бронирование не входит в исходное состояние сессии:
	// пустой выбор с подтверждением отменяет только свои даты
	tue := date(2025, time.June, 10)
	wed := date(2025, time.June, 11)

	foreign := reservation(20, wed, domain.DurationFull)
	foreign.UserID = "user-2"

	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{
			reservation(10, tue, domain.DurationAM),
			foreign,
		},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           "user-1",
		DeskID:           1,
		Duration:         domain.DurationAM,
		ConfirmCancelAll: true,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllSuccess, resp.Outcome)
	assert.Equal(t, []int64{10}, repo.deleted)
}

func TestExecute_InternalErrorReasonIsPreserved(t *testing.T) {
	tue := date(2025, time.June, 10)
	boom := errors.New("connection refused")

	repo := &fakeReservationRepo{
		initial: []*domain.Reservation{reservation(10, tue, domain.DurationAM)},
		failIDs: map[int64]error{10: boom},
	}
	creator := &fakeCreator{}
	uc := newTestUseCase(repo, creator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           "user-1",
		DeskID:           1,
		Duration:         domain.DurationAM,
		ConfirmCancelAll: true,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeAllFailed, resp.Outcome)
	require.Len(t, resp.Results, 1)
	assert.Contains(t, resp.Results[0].Reason, "connection refused")
}
