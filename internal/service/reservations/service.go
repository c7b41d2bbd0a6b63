package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями столов
type Service struct {
	reservationRepo ReservationRepository
	employeeClient  EmployeeServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	employeeClient EmployeeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		employeeClient:  employeeClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Проверяет права доступа - пользователь видит только своё бронирование,
// администратор - любое.
func (s *Service) GetByID(ctx context.Context, id int64, userID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%s", id, userID)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает бронирования пользователя за период.
// Свои бронирования доступны всегда, чужие - только администратору.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations of user=%s for user=%s",
		req.TargetUserID, req.UserID)

	if req.UserID != req.TargetUserID {
		if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("GetUserReservations: access denied for user=%s to reservations of user=%s",
				req.UserID, req.TargetUserID)
			return nil, err
		}
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%s",
		len(reservations), req.TargetUserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetAllReservations получает все бронирования за период.
// Доступно только администраторам.
func (s *Service) GetAllReservations(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetAllReservations: fetching reservations for user=%s", req.UserID)

	// Проверка прав до любых обращений к хранилищу
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("GetAllReservations: access denied for user=%s", req.UserID)
		return nil, err
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetAllReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateDuration меняет длительность бронирования (AM/PM/FULL).
// Единственное изменяемое поле: стол и дата меняются только через
// отмену и новое бронирование.
func (s *Service) UpdateDuration(ctx context.Context, reservationID int64, req *models.UpdateDurationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateDuration: updating reservation id=%d to duration=%s by user=%s",
		reservationID, req.Duration, req.UserID)

	duration, err := models.ToDomainDuration(req.Duration)
	if err != nil {
		s.logger.Warn("UpdateDuration: invalid duration=%s for reservation id=%d", req.Duration, reservationID)
		return nil, fmt.Errorf("%w: invalid duration", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "UpdateDuration", reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, reservation, req.UserID); err != nil {
		s.logger.Warn("UpdateDuration: access denied for user=%s to reservation id=%d", req.UserID, reservationID)
		return nil, err
	}

	if err := s.checkMutable(reservation); err != nil {
		s.logger.Warn("UpdateDuration: reservation id=%d is dated %s, past reservations are immutable",
			reservationID, reservation.BookingDate.Format(domain.DateFormat))
		return nil, err
	}

	if err := s.reservationRepo.UpdateDuration(ctx, reservationID, duration); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateDuration: reservation id=%d not found during update", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateDuration: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: UpdateDuration - repository error: %v", ErrInternal, err)
	}

	reservation.Duration = duration

	s.logger.Info("UpdateDuration: successfully updated reservation id=%d to duration=%s", reservationID, duration)
	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только своё бронирование, администратор - любое.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%s", reservationID, req.UserID)

	reservation, err := s.getReservation(ctx, "Cancel", reservationID)
	if err != nil {
		return err
	}

	if err := s.checkUserAccess(ctx, reservation, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to cancel reservation id=%d", req.UserID, reservationID)
		return err
	}

	if err := s.checkMutable(reservation); err != nil {
		s.logger.Warn("Cancel: reservation id=%d is dated %s, past reservations are immutable",
			reservationID, reservation.BookingDate.Format(domain.DateFormat))
		return err
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// checkMutable проверяет, что бронирование еще можно менять.
// Прошедшие даты неизменяемы: их нельзя ни отменить, ни переоформить.
func (s *Service) checkMutable(reservation *domain.Reservation) error {
	today := domain.DateOnly(s.timeProvider.Now())
	if domain.DateOnly(reservation.BookingDate).Before(today) {
		return ErrPastReservation
	}
	return nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию.
// Владелец получает доступ без обращения к каталогу сотрудников.
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID string) error {
	if reservation.IsOwnedBy(userID) {
		return nil
	}
	return s.checkAdminAccess(ctx, userID)
}

// checkAdminAccess проверяет, что пользователь является администратором.
// Недоступность каталога сотрудников закрывается отказом.
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	isAdmin, err := s.employeeClient.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to verify admin rights for user=%s: %v", userID, err)
		return ErrAccessDenied
	}
	if !isAdmin {
		s.logger.Warn("checkAdminAccess: user=%s is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}
