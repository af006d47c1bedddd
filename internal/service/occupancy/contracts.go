package occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// OccupancyReader интерфейс адаптера одного источника занятости
// Оба репозитория (публичные записи и внутренние записи персонала)
// реализуют его поверх своих таблиц
type OccupancyReader interface {
	ListOccupancy(ctx context.Context, professionalID int64, date time.Time) ([]domain.OccupancyRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
