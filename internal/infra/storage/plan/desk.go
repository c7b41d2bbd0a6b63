package plan

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/psqlbuilder"
)

// ListDesksByPlan возвращает все столы плана
func (r *Repository) ListDesksByPlan(ctx context.Context, planID int64) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "plan_id", "x", "y", "rotation", "created_at", "updated_at",
	).
		From("desks").
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDesksByPlan - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesksByPlan - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		var d domain.Desk
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&d.ID, &d.PlanID, &d.X, &d.Y, &d.Rotation, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListDesksByPlan - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		desks = append(desks, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDesksByPlan - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

// CreateDesk создает стол под планом и возвращает серверный идентификатор
func (r *Repository) CreateDesk(ctx context.Context, d *domain.Desk) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desks").
		Columns("plan_id", "x", "y", "rotation").
		Values(d.PlanID, d.X, d.Y, d.Rotation).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDesk - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateDesk - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetDeskByID получает стол по ID
func (r *Repository) GetDeskByID(ctx context.Context, id int64) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "plan_id", "x", "y", "rotation", "created_at", "updated_at",
	).
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDeskByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Desk
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID, &d.PlanID, &d.X, &d.Y, &d.Rotation, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDeskByID - scan desk: %v", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// UpdateDesk обновляет позицию и поворот стола
func (r *Repository) UpdateDesk(ctx context.Context, d *domain.Desk) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("desks").
		Set("x", d.X).
		Set("y", d.Y).
		Set("rotation", d.Rotation).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDesk - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDesk - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDesk - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}

// DeleteDesk удаляет стол; его бронирования удаляются каскадно
func (r *Repository) DeleteDesk(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDesk - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDesk - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDesk - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}
