package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/psqlbuilder"
)

// Имя уникального индекса-синглтона из миграций
const constraintSingletonPlan = "plans_singleton_key"

// Repository репозиторий плана этажа и его объектов (столы, стены)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория плана
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreatePlan создает план этажа.
// Правило "не более одного плана в системе" контролирует база через
// уникальный индекс-синглтон; нарушение транслируется в ErrPlanAlreadyExists.
func (r *Repository) CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("plans").
		Columns("name", "width", "height", "origin_x", "origin_y", "owner_id").
		Values(p.Name, p.Width, p.Height, p.OriginX, p.OriginY, p.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePlan - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == constraintSingletonPlan {
			return nil, ErrPlanAlreadyExists
		}
		return nil, fmt.Errorf("%w: CreatePlan - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetPlan возвращает единственный план системы
func (r *Repository) GetPlan(ctx context.Context) (*domain.Plan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "width", "height", "origin_x", "origin_y", "owner_id",
		"created_at", "updated_at",
	).
		From("plans").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlan - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Plan
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Width, &p.Height, &p.OriginX, &p.OriginY, &p.OwnerID,
		&createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPlan - scan plan: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdatePlan обновляет размеры, точку отсчета и владельца плана
func (r *Repository) UpdatePlan(ctx context.Context, p *domain.Plan) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("plans").
		Set("name", p.Name).
		Set("width", p.Width).
		Set("height", p.Height).
		Set("origin_x", p.OriginX).
		Set("origin_y", p.OriginY).
		Set("owner_id", p.OwnerID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePlan - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePlan - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePlan - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// DeletePlan удаляет план. Столы, стены и бронирования столов
// удаляются каскадно на уровне БД.
func (r *Repository) DeletePlan(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeletePlan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeletePlan - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeletePlan - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}
