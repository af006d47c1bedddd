package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-AppointmentService/pkg/psqlbuilder"
)

// entryStatusCancelled статус отмененной записи персонала
const entryStatusCancelled = "cancelled"

// Repository адаптер занятости по внутренним записям персонала (agenda_entries)
// Записи создаются рабочим приложением персонала; здесь только чтение занятости.
// Маппит строки в domain.OccupancyRecord, чтобы движок слотов не различал
// источники записей.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория внутренних записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOccupancy возвращает занятость профессионала на дату по внутренним записям
// Отмененные записи исключаются на уровне SQL
func (r *Repository) ListOccupancy(ctx context.Context, professionalID int64, date time.Time) ([]domain.OccupancyRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("entry_date", "start_time").
		From("agenda_entries").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"entry_date": date}).
		Where(squirrel.NotEq{"status": entryStatusCancelled}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.OccupancyRecord, 0)
	for rows.Next() {
		record := domain.OccupancyRecord{Source: domain.SourceAgendaEntry}
		if err := rows.Scan(&record.Date, &record.StartTime); err != nil {
			return nil, fmt.Errorf("%w: ListOccupancy - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
