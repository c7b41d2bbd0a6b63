package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	planRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/plan"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/plans/models"
)

// Service сервис для работы с планом этажа
type Service struct {
	planRepo       PlanRepository
	employeeClient EmployeeServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса плана
func NewService(
	planRepo PlanRepository,
	employeeClient EmployeeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		planRepo:       planRepo,
		employeeClient: employeeClient,
		logger:         logger,
	}
}

// GetPlan возвращает план этажа со столами и стенами.
// Публичная операция: просмотр плана доступен всем сотрудникам.
func (s *Service) GetPlan(ctx context.Context) (*models.PlanResponse, error) {
	s.logger.Info("GetPlan: fetching floor plan")

	plan, err := s.planRepo.GetPlan(ctx)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("GetPlan: no plan configured")
			return nil, ErrPlanNotFound
		}
		s.logger.Error("GetPlan: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPlan - repository error: %v", ErrInternal, err)
	}

	desks, err := s.planRepo.ListDesksByPlan(ctx, plan.ID)
	if err != nil {
		s.logger.Error("GetPlan: failed to list desks for plan id=%d: %v", plan.ID, err)
		return nil, fmt.Errorf("%w: GetPlan - failed to list desks: %v", ErrInternal, err)
	}

	walls, err := s.planRepo.ListWallsByPlan(ctx, plan.ID)
	if err != nil {
		s.logger.Error("GetPlan: failed to list walls for plan id=%d: %v", plan.ID, err)
		return nil, fmt.Errorf("%w: GetPlan - failed to list walls: %v", ErrInternal, err)
	}

	s.logger.Info("GetPlan: successfully fetched plan id=%d with %d desks, %d walls",
		plan.ID, len(desks), len(walls))
	return models.FromDomainPlan(plan, desks, walls), nil
}

// CreatePlan создает план этажа. Доступно только администраторам;
// второй план в системе не допускается.
func (s *Service) CreatePlan(ctx context.Context, req *models.CreatePlanRequest) (*models.PlanResponse, error) {
	s.logger.Info("CreatePlan: creating plan name=%s by user=%s", req.Name, req.UserID)

	if err := validatePlanFields(req.Name, req.Width, req.Height); err != nil {
		s.logger.Warn("CreatePlan: validation failed: %v", err)
		return nil, err
	}

	// Проверка прав до любых обращений к хранилищу
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("CreatePlan: access denied for user=%s", req.UserID)
		return nil, err
	}

	created, err := s.planRepo.CreatePlan(ctx, &domain.Plan{
		Name:    req.Name,
		Width:   req.Width,
		Height:  req.Height,
		OriginX: req.OriginX,
		OriginY: req.OriginY,
		OwnerID: req.UserID,
	})
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanAlreadyExists) {
			s.logger.Warn("CreatePlan: plan already exists")
			return nil, ErrPlanAlreadyExists
		}
		s.logger.Error("CreatePlan: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePlan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePlan: successfully created plan id=%d", created.ID)
	return models.FromDomainPlan(created, nil, nil), nil
}

// UpdatePlan обновляет имя, размеры и точку отсчета плана.
// Доступно только администраторам.
func (s *Service) UpdatePlan(ctx context.Context, planID int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error) {
	s.logger.Info("UpdatePlan: updating plan id=%d by user=%s", planID, req.UserID)

	if err := validatePlanFields(req.Name, req.Width, req.Height); err != nil {
		s.logger.Warn("UpdatePlan: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("UpdatePlan: access denied for user=%s", req.UserID)
		return nil, err
	}

	plan, err := s.planRepo.GetPlan(ctx)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("UpdatePlan: plan not found")
			return nil, ErrPlanNotFound
		}
		s.logger.Error("UpdatePlan: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdatePlan - repository error: %v", ErrInternal, err)
	}
	if plan.ID != planID {
		s.logger.Warn("UpdatePlan: plan id=%d does not match configured plan id=%d", planID, plan.ID)
		return nil, ErrPlanNotFound
	}

	plan.Name = req.Name
	plan.Width = req.Width
	plan.Height = req.Height
	plan.OriginX = req.OriginX
	plan.OriginY = req.OriginY
	plan.OwnerID = req.UserID

	if err := s.planRepo.UpdatePlan(ctx, plan); err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("UpdatePlan: repository error for plan id=%d: %v", planID, err)
		return nil, fmt.Errorf("%w: UpdatePlan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePlan: successfully updated plan id=%d", planID)
	return models.FromDomainPlan(plan, nil, nil), nil
}

// DeletePlan удаляет план вместе со столами, стенами и их бронированиями.
// Доступно только администраторам.
func (s *Service) DeletePlan(ctx context.Context, planID int64, userID string) error {
	s.logger.Info("DeletePlan: deleting plan id=%d by user=%s", planID, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("DeletePlan: access denied for user=%s", userID)
		return err
	}

	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("DeletePlan: plan id=%d not found", planID)
			return ErrPlanNotFound
		}
		s.logger.Error("DeletePlan: repository error for plan id=%d: %v", planID, err)
		return fmt.Errorf("%w: DeletePlan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePlan: successfully deleted plan id=%d", planID)
	return nil
}

// Вспомогательные методы

func validatePlanFields(name string, width, height int) error {
	if name == "" {
		return fmt.Errorf("%w: plan name is required", ErrInvalidInput)
	}
	if width < domain.DeskWidth || height < domain.DeskHeight {
		return fmt.Errorf("%w: plan dimensions are too small", ErrInvalidInput)
	}
	return nil
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
