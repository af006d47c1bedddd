package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
)

// ScheduleRepository интерфейс репозитория расписаний
// Реализуется и репозиторием напрямую, и read-through кешем поверх него
type ScheduleRepository interface {
	// ListByProfessionalAndWeekday получает рабочие окна профессионала на день недели
	ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error)
}

// OccupancyService интерфейс сервиса занятости
type OccupancyService interface {
	// ListOccupiedTimes возвращает объединенное множество занятых времен из обоих источников записей
	ListOccupiedTimes(ctx context.Context, professionalID int64, date time.Time) (domain.OccupiedTimes, error)
}

// ProfileServiceClient интерфейс клиента ProfileService
type ProfileServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
