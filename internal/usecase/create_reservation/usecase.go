package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
)

// UseCase use case для создания одного бронирования.
// Используется напрямую обработчиком POST /reservations и движком
// сверки сессии бронирования (каждый create сессии - независимая операция).
type UseCase struct {
	reservationRepo ReservationRepository
	planRepo        PlanRepository
	employeeClient  EmployeeServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	planRepo PlanRepository,
	employeeClient EmployeeServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		planRepo:        planRepo,
		employeeClient:  employeeClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// последняя линия обороны - уникальные индексы БД, так что при гонке
// двух клиентов за один слот побеждает ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, desk=%d, date=%s, duration=%s",
		req.UserID, req.DeskID, req.Date.Format(domain.DateFormat), req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты против окна бронирования
	now := uc.timeProvider.Now()
	if err := validateBookingDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование стола
	if _, err := uc.planRepo.GetDeskByID(ctx, req.DeskID); err != nil {
		if errors.Is(err, planRepo.ErrDeskNotFound) {
			uc.logger.Warn("CreateReservation: desk id=%d not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("CreateReservation: failed to get desk id=%d: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// 4. Разрешаем имя сотрудника для денормализации.
	// При недоступности каталога бронирование все равно создается -
	// display name остается пустым.
	displayName := ""
	if employee, err := uc.employeeClient.GetEmployeeWithGracefulDegradation(ctx, req.UserID); err == nil {
		displayName = employee.FullName
	} else {
		uc.logger.Warn("CreateReservation: proceeding without employee record for user=%s: %v", req.UserID, err)
	}

	var result *domain.Reservation

	// 5. Проверка занятости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := domain.DateOnly(req.Date)

		// 5.1. Выборка существующих бронирований слота с блокировкой (FOR UPDATE)
		filter := domain.ReservationsFilter{
			DeskID:    &req.DeskID,
			StartDate: &date,
			EndDate:   &date,
		}
		existing, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check desk availability: %v", err)
			return fmt.Errorf("%w: failed to check desk availability: %v", ErrInternal, err)
		}

		if len(existing) > 0 {
			uc.logger.Warn("CreateReservation: desk=%d already reserved on %s",
				req.DeskID, date.Format(domain.DateFormat))
			return ErrDeskAlreadyReserved
		}

		// 5.2. Вставка; уникальные индексы добивают гонки, которые
		// просочились мимо выборки
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			DeskID:              req.DeskID,
			UserID:              req.UserID,
			EmployeeDisplayName: displayName,
			BookingDate:         date,
			Duration:            req.Duration,
		})
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrDeskAlreadyReserved):
				return ErrDeskAlreadyReserved
			case errors.Is(err, reservationRepo.ErrUserDayTaken):
				return ErrUserDayTaken
			default:
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:                  result.ID,
		DeskID:              result.DeskID,
		UserID:              result.UserID,
		EmployeeDisplayName: result.EmployeeDisplayName,
		BookingDate:         result.BookingDate,
		Duration:            result.Duration,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}
