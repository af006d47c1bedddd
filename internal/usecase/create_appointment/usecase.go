package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/appointment"
	profileClient "github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
)

// UseCase use case создания записи через публичную ссылку
//
// Конкурентный доступ разрешается оптимистично: чтение занятости без блокировок,
// затем вставка, где частичный уникальный индекс БД - авторитетная защита.
// Предварительная проверка (шаг 6) лишь сужает окно гонки и дает быстрый отказ;
// проигравший гонку между проверкой и вставкой получает тот же ErrSlotAlreadyBooked
// из трансляции нарушения уникальности. Блокировки через удаленную БД сознательно
// не используются
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	occupancySvc    OccupancyService
	profileClient   ProfileServiceClient
	customerRepo    CustomerRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	occupancySvc OccupancyService,
	profileClient ProfileServiceClient,
	customerRepo CustomerRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		occupancySvc:    occupancySvc,
		profileClient:   profileClient,
		customerRepo:    customerRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%d, service=%d, date=%s, time=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата+время должны быть строго в будущем
	now := uc.timeProvider.Now()
	if !isInFuture(req.Date, req.StartTime, now) {
		uc.logger.Warn("CreateAppointment: time %s %s is not in the future",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrTimeInPast
	}

	// 3. Проверяем существование профессионала
	if _, err := uc.profileClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу и проверяем, что её оказывает этот профессионал
	service, err := uc.profileClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.OfferedBy(req.ProfessionalID) {
		uc.logger.Warn("CreateAppointment: service id=%d is not offered by professional id=%d",
			req.ServiceID, req.ProfessionalID)
		return nil, ErrServiceNotOffered
	}

	// 5. Время должно принадлежать сетке слотов рабочих окон этого дня недели
	weekday := domain.WeekdayFromDate(req.Date)
	windows, err := uc.scheduleRepo.ListByProfessionalAndWeekday(ctx, req.ProfessionalID, weekday)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get working windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get working windows: %v", ErrInternal, err)
	}

	if !isSlotOffered(windows, req.StartTime) {
		uc.logger.Warn("CreateAppointment: time %s is outside working hours (professional=%d, weekday=%s)",
			req.StartTime, req.ProfessionalID, weekday)
		return nil, ErrOutsideWorkingHours
	}

	// 6. Свежее чтение занятости из обоих источников записей
	// Не переиспользуем данные, которые видел клиент при выборе слота:
	// с тех пор слот мог занять другой клиент
	occupied, err := uc.occupancySvc.ListOccupiedTimes(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get occupied times: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied times: %v", ErrInternal, err)
	}

	if occupied.Contains(req.StartTime) {
		uc.logger.Warn("CreateAppointment: slot %s %s is already booked (professional=%d)",
			req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID)
		return nil, ErrSlotAlreadyBooked
	}

	// 7. Вставляем запись со статусом pending
	appt := &domain.Appointment{
		PublicCode:      uuid.NewString(),
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.Date,
		StartTime:       req.StartTime,
		Status:          domain.StatusPending,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		// Второй клиент выиграл гонку между шагами 6 и 7 - нарушение
		// уникального индекса транслируется в тот же конфликт
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: lost insert race for slot %s %s (professional=%d)",
				req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, code=%s, service=%s",
		created.ID, created.PublicCode, service.Name)

	// 8. Best-effort обновление клиентской базы профессионала
	// Ошибка здесь не откатывает созданную запись
	if err := uc.customerRepo.Upsert(ctx, req.ProfessionalID, req.CustomerName, req.CustomerPhone); err != nil {
		uc.logger.Warn("CreateAppointment: customer upsert failed for appointment id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:              created.ID,
		PublicCode:      created.PublicCode,
		ProfessionalID:  created.ProfessionalID,
		ServiceID:       created.ServiceID,
		AppointmentDate: created.AppointmentDate,
		StartTime:       created.StartTime,
		Status:          string(created.Status),
		CustomerName:    created.CustomerName,
		CustomerPhone:   created.CustomerPhone,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
