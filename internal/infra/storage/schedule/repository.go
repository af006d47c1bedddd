package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-AppointmentService/pkg/psqlbuilder"
)

// windowColumns полный список колонок таблицы working_windows
var windowColumns = []string{
	"id",
	"professional_id",
	"weekday",
	"start_time",
	"end_time",
	"step_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий рабочих окон профессионалов
// Колонка weekday хранит доменную нумерацию (воскресенье=0 .. суббота=6);
// внешние источники с другой нумерацией конвертируются до записи
// через domain.WeekdayFromMondayBased.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByProfessionalAndWeekday получает рабочие окна профессионала на день недели
func (r *Repository) ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("working_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListByProfessional получает все рабочие окна профессионала на неделю
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("working_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// Create создает одно рабочее окно
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, window *domain.WorkingWindow) (*domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_windows").
		Columns(
			"professional_id",
			"weekday",
			"start_time",
			"end_time",
			"step_minutes",
		).
		Values(
			window.ProfessionalID,
			int(window.Weekday),
			window.StartTime,
			window.EndTime,
			window.StepMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// DeleteByProfessional удаляет все рабочие окна профессионала
// Используется вместе с Create внутри транзакции при полной замене расписания
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс рабочих окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]domain.WorkingWindow, error) {
	windows := make([]domain.WorkingWindow, 0)

	for rows.Next() {
		var window domain.WorkingWindow
		var weekday int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.ProfessionalID,
			&weekday,
			&window.StartTime,
			&window.EndTime,
			&window.StepMinutes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.Weekday = domain.Weekday(weekday)
		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
