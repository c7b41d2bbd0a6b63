package get_desk_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/bookingwindow"
	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	"github.com/m04kA/SMC-WorkplaceService/pkg/ptr"
)

// UseCase use case получения доступности стола за период.
// Для администраторов бронирования всего периода достаются одним range
// запросом; для остальных - выборка собственных бронирований за период
// плюс подневные выборки по столу, результаты сливаются в тот же набор
// статусов. Оба пути обязаны сходиться к одинаковому ответу.
type UseCase struct {
	reservationRepo ReservationRepository
	planRepo        PlanRepository
	employeeClient  EmployeeServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	planRepo PlanRepository,
	employeeClient EmployeeServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		planRepo:        planRepo,
		employeeClient:  employeeClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает статус стола по каждому рабочему дню периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeskAvailability: user=%s, desk=%d, from=%s, to=%s",
		req.UserID, req.DeskID,
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDeskAvailability: validation failed: %v", err)
		return nil, err
	}

	// Проверяем существование стола
	if _, err := uc.planRepo.GetDeskByID(ctx, req.DeskID); err != nil {
		if errors.Is(err, planRepo.ErrDeskNotFound) {
			uc.logger.Warn("GetDeskAvailability: desk id=%d not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("GetDeskAvailability: failed to get desk id=%d: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// Личность спрашивающего для сопоставления владения.
	// Каталог недоступен - работаем только по точному userId.
	actor := actorIdentity{UserID: req.UserID}
	isAdmin := false
	if employee, err := uc.employeeClient.GetEmployeeWithGracefulDegradation(ctx, req.UserID); err == nil {
		actor.FullName = employee.FullName
		actor.Email = employee.Email
		isAdmin = employee.IsAdmin
	} else {
		uc.logger.Warn("GetDeskAvailability: employee record unavailable for user=%s, matching by id only: %v",
			req.UserID, err)
	}

	from := domain.DateOnly(req.From)
	to := domain.DateOnly(req.To)

	var reservations []*domain.Reservation
	var err error

	if isAdmin {
		reservations, err = uc.loadRangeBulk(ctx, req.DeskID, from, to)
	} else {
		reservations, err = uc.loadRangePerDate(ctx, req.DeskID, req.UserID, from, to)
	}
	if err != nil {
		uc.logger.Error("GetDeskAvailability: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	days := buildDayStatuses(req.DeskID, from, to, reservations, actor)

	uc.logger.Info("GetDeskAvailability: desk=%d, %d business days resolved", req.DeskID, len(days))
	return &Response{DeskID: req.DeskID, Days: days}, nil
}

// loadRangeBulk привилегированный путь: один range запрос по столу
func (uc *UseCase) loadRangeBulk(ctx context.Context, deskID int64, from, to time.Time) ([]*domain.Reservation, error) {
	filter := domain.ReservationsFilter{
		DeskID:    &deskID,
		StartDate: &from,
		EndDate:   &to,
	}
	return uc.reservationRepo.GetWithFilter(ctx, filter)
}

// loadRangePerDate путь без привилегий: собственные бронирования за период
// одним запросом плюс подневные выборки по столу, слитые по id.
// Должен сходиться к тому же результату, что и loadRangeBulk.
func (uc *UseCase) loadRangePerDate(ctx context.Context, deskID int64, userID string, from, to time.Time) ([]*domain.Reservation, error) {
	seen := make(map[int64]bool)
	merged := make([]*domain.Reservation, 0)

	// Собственные бронирования за период (доступны любому пользователю)
	ownFilter := domain.ReservationsFilter{
		UserID:    &userID,
		StartDate: &from,
		EndDate:   &to,
	}
	own, err := uc.reservationRepo.GetWithFilter(ctx, ownFilter)
	if err != nil {
		return nil, err
	}
	for _, res := range own {
		if res.DeskID == deskID && !seen[res.ID] {
			seen[res.ID] = true
			merged = append(merged, res)
		}
	}

	// Подневные выборки по столу
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if bookingwindow.IsWeekend(d) {
			continue
		}

		date := d
		dayFilter := domain.ReservationsFilter{
			DeskID:    &deskID,
			StartDate: &date,
			EndDate:   &date,
		}
		dayReservations, err := uc.reservationRepo.GetWithFilter(ctx, dayFilter)
		if err != nil {
			return nil, err
		}
		for _, res := range dayReservations {
			if !seen[res.ID] {
				seen[res.ID] = true
				merged = append(merged, res)
			}
		}
	}

	return merged, nil
}

// buildDayStatuses раскладывает бронирования по рабочим дням периода.
// Выходные в ответ не попадают: они не бронируются никогда.
func buildDayStatuses(deskID int64, from, to time.Time, reservations []*domain.Reservation, actor actorIdentity) []DayAvailability {
	byDate := make(map[time.Time]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		if res.DeskID != deskID {
			continue
		}
		byDate[domain.DateOnly(res.BookingDate)] = res
	}

	days := make([]DayAvailability, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if bookingwindow.IsWeekend(d) {
			continue
		}

		day := DayAvailability{Date: d, Status: StatusAvailable}

		if res, ok := byDate[d]; ok {
			day.Duration = ptr.Ptr(res.Duration)
			day.ReservedBy = res.EmployeeDisplayName

			if isOwnReservation(res, actor) {
				day.Status = StatusOwnReservation
				day.ReservationID = ptr.Ptr(res.ID)
			} else {
				day.Status = StatusReservedByOther
			}
		}

		days = append(days, day)
	}

	return days
}
