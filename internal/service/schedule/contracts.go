package schedule

import (
	"context"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.WorkingWindow, error)
	Create(ctx context.Context, window *domain.WorkingWindow) (*domain.WorkingWindow, error)
	DeleteByProfessional(ctx context.Context, professionalID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheInvalidator интерфейс сброса кеша расписаний
// Опциональная зависимость: nil, если кеширование выключено
type CacheInvalidator interface {
	Invalidate(ctx context.Context, professionalID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
