package reconcile_bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/bookingwindow"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	createReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/create_reservation"
)

// UseCase use case сверки сессии бронирования.
// Принимает желаемый набор дат и сводит серверное состояние к нему:
// вычисляет минимальный набор операций create/delete/update_duration
// и запускает их параллельно. Операции независимы, частичный успех
// не откатывается и никогда не выдается за полный.
type UseCase struct {
	reservationRepo ReservationRepository
	creator         ReservationCreator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	creator ReservationCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		creator:         creator,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет сверку сессии бронирования.
//
// Порядок: валидация -> загрузка исходного состояния -> проверка
// подтверждения "отменить все" -> diff -> параллельный запуск операций ->
// подсчет итога. Итог формируется строго после завершения всех операций,
// сколько бы их ни было.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReconcileBookings: user=%s, desk=%d, selected=%d, duration=%s",
		req.UserID, req.DeskID, len(req.SelectedDates), req.Duration)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("ReconcileBookings: validation failed: %v", err)
		return nil, err
	}

	// 2. Состояние стола внутри окна бронирования. Бронирования
	// пользователя образуют исходное состояние сессии; занятые другими
	// даты выбору недоступны и молча выбрасываются из него: выбор мог
	// быть построен на устаревшем снимке доступности.
	today := domain.DateOnly(now)
	windowEnd := bookingwindow.WindowEnd(today)
	filter := domain.ReservationsFilter{
		DeskID:    &req.DeskID,
		StartDate: &today,
		EndDate:   &windowEnd,
	}
	deskState, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ReconcileBookings: failed to load desk state: %v", err)
		return nil, fmt.Errorf("%w: failed to load desk state: %v", ErrInternal, err)
	}

	initial := make([]*domain.Reservation, 0, len(deskState))
	blocked := make(map[time.Time]bool)
	for _, res := range deskState {
		if res.IsOwnedBy(req.UserID) {
			initial = append(initial, res)
		} else {
			blocked[domain.DateOnly(res.BookingDate)] = true
		}
	}

	selected := sanitizeSelection(req.SelectedDates, blocked)
	if len(selected) < len(req.SelectedDates) {
		uc.logger.Warn("ReconcileBookings: user=%s, desk=%d: %d selected date(s) already taken by others, dropped",
			req.UserID, req.DeskID, len(req.SelectedDates)-len(selected))
	}

	// В дневном виде сверка касается только просматриваемого дня:
	// бронирования на другие даты в исходное состояние не входят
	// и удалению не подлежат.
	if req.SingleDayDate != nil {
		viewed := domain.DateOnly(*req.SingleDayDate)
		scoped := initial[:0]
		for _, res := range initial {
			if res.IsOnDate(viewed) {
				scoped = append(scoped, res)
			}
		}
		initial = scoped
	}

	// 3. Пустой выбор при непустом состоянии - "отменить все".
	// Без явного подтверждения сессия отклоняется целиком.
	if len(selected) == 0 && len(initial) > 0 && !req.ConfirmCancelAll {
		uc.logger.Warn("ReconcileBookings: user=%s attempted cancel-all without confirmation", req.UserID)
		return nil, ErrCancelAllNotConfirmed
	}

	// 4. Вычисляем diff
	diff := computeDiff(initial, selected, req.Duration)
	if diff.isEmpty() {
		uc.logger.Info("ReconcileBookings: no operations required for user=%s, desk=%d", req.UserID, req.DeskID)
		return &Response{Outcome: OutcomeNoOp, Results: []OperationResult{}}, nil
	}

	// 5. Параллельный запуск всех операций; результаты пишутся каждым
	// воркером в свой слот, гонок по слайсу нет
	results := make([]OperationResult, diff.operationCount())
	var wg sync.WaitGroup
	slot := 0

	for _, date := range diff.toCreate {
		wg.Add(1)
		go func(idx int, date time.Time) {
			defer wg.Done()
			results[idx] = uc.runCreate(ctx, req, date)
		}(slot, date)
		slot++
	}

	for _, res := range diff.toDelete {
		wg.Add(1)
		go func(idx int, res *domain.Reservation) {
			defer wg.Done()
			results[idx] = uc.runDelete(ctx, res)
		}(slot, res)
		slot++
	}

	for _, res := range diff.toUpdateDuration {
		wg.Add(1)
		go func(idx int, res *domain.Reservation) {
			defer wg.Done()
			results[idx] = uc.runUpdateDuration(ctx, res, req.Duration)
		}(slot, res)
		slot++
	}

	wg.Wait()

	// 6. Подсчет итога после завершения всех операций
	resp := &Response{Total: len(results), Results: results}
	for _, r := range results {
		if r.Success {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	switch {
	case resp.Failed == 0:
		resp.Outcome = OutcomeAllSuccess
	case resp.Succeeded == 0:
		resp.Outcome = OutcomeAllFailed
	default:
		resp.Outcome = OutcomePartialSuccess
	}

	uc.logger.Info("ReconcileBookings: user=%s, desk=%d finished: outcome=%s, succeeded=%d, failed=%d",
		req.UserID, req.DeskID, resp.Outcome, resp.Succeeded, resp.Failed)

	return resp, nil
}

// runCreate запускает создание одного бронирования через полный
// use case create_reservation: каждая дата проходит собственную
// проверку занятости в собственной транзакции.
func (uc *UseCase) runCreate(ctx context.Context, req *Request, date time.Time) OperationResult {
	result := OperationResult{Type: OperationCreate, Date: date}

	created, err := uc.creator.Execute(ctx, &createReservation.Request{
		UserID:   req.UserID,
		DeskID:   req.DeskID,
		Date:     date,
		Duration: req.Duration,
	})
	if err != nil {
		uc.logger.Warn("ReconcileBookings: create failed for desk=%d, date=%s: %v",
			req.DeskID, date.Format(domain.DateFormat), err)
		result.Reason = err.Error()
		return result
	}

	result.Success = true
	result.ReservationID = &created.ID
	return result
}

func (uc *UseCase) runDelete(ctx context.Context, res *domain.Reservation) OperationResult {
	result := OperationResult{
		Type:          OperationDelete,
		Date:          domain.DateOnly(res.BookingDate),
		ReservationID: &res.ID,
	}

	if err := uc.reservationRepo.Delete(ctx, res.ID); err != nil {
		uc.logger.Warn("ReconcileBookings: delete failed for reservation id=%d: %v", res.ID, err)
		result.Reason = err.Error()
		return result
	}

	result.Success = true
	return result
}

func (uc *UseCase) runUpdateDuration(ctx context.Context, res *domain.Reservation, duration domain.Duration) OperationResult {
	result := OperationResult{
		Type:          OperationUpdateDuration,
		Date:          domain.DateOnly(res.BookingDate),
		ReservationID: &res.ID,
	}

	if err := uc.reservationRepo.UpdateDuration(ctx, res.ID, duration); err != nil {
		uc.logger.Warn("ReconcileBookings: update duration failed for reservation id=%d: %v", res.ID, err)
		result.Reason = err.Error()
		return result
	}

	result.Success = true
	return result
}
