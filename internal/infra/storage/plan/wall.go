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

// ListWallsByPlan возвращает все стены плана
func (r *Repository) ListWallsByPlan(ctx context.Context, planID int64) ([]*domain.Wall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "plan_id", "x", "y", "width", "height", "created_at", "updated_at",
	).
		From("walls").
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWallsByPlan - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWallsByPlan - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	walls := make([]*domain.Wall, 0)
	for rows.Next() {
		var w domain.Wall
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&w.ID, &w.PlanID, &w.X, &w.Y, &w.Width, &w.Height, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListWallsByPlan - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time
		walls = append(walls, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWallsByPlan - rows error: %v", ErrScanRow, err)
	}

	return walls, nil
}

// CreateWall создает стену под планом и возвращает серверный идентификатор
func (r *Repository) CreateWall(ctx context.Context, w *domain.Wall) (*domain.Wall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("walls").
		Columns("plan_id", "x", "y", "width", "height").
		Values(w.PlanID, w.X, w.Y, w.Width, w.Height).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateWall - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateWall - execute insert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return w, nil
}

// UpdateWall обновляет позицию и размеры стены
func (r *Repository) UpdateWall(ctx context.Context, w *domain.Wall) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("walls").
		Set("x", w.X).
		Set("y", w.Y).
		Set("width", w.Width).
		Set("height", w.Height).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": w.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWall - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWall - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWall - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWallNotFound
	}

	return nil
}

// DeleteWall удаляет стену
func (r *Repository) DeleteWall(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("walls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteWall - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWall - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWall - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWallNotFound
	}

	return nil
}
