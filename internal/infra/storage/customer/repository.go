package customer

import (
	"context"
	"fmt"

	"github.com/m04kA/SMP-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий клиентской базы профессионала
// Запись ведется best-effort после успешного бронирования: ошибка здесь
// не должна откатывать созданную запись.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет клиента по телефону
// Телефон - естественный ключ: повторное бронирование обновляет имя
func (r *Repository) Upsert(ctx context.Context, professionalID int64, name, phone string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("professional_id", "name", "phone").
		Values(professionalID, name, phone).
		Suffix("ON CONFLICT (professional_id, phone) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
