package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
)

// AppointmentRepository интерфейс репозитория публичных записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error)
}

// OccupancyService интерфейс сервиса занятости
type OccupancyService interface {
	ListOccupiedTimes(ctx context.Context, professionalID int64, date time.Time) (domain.OccupiedTimes, error)
}

// ProfileServiceClient интерфейс клиента ProfileService
type ProfileServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error)
	GetService(ctx context.Context, serviceID int64) (*profileservice.Service, error)
}

// CustomerRepository интерфейс репозитория клиентской базы
type CustomerRepository interface {
	Upsert(ctx context.Context, professionalID int64, name, phone string) error
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
