package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	profileClient "github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
)

// UseCase use case для получения слотов профессионала на дату
type UseCase struct {
	scheduleRepo  ScheduleRepository
	occupancySvc  OccupancyService
	profileClient ProfileServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	occupancySvc OccupancyService,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		occupancySvc:  occupancySvc,
		profileClient: profileClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование профессионала
	if _, err := uc.profileClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем рабочие окна на день недели запрошенной даты
	// Нумерация дней недели нормализована на границе адаптера (воскресенье=0)
	weekday := domain.WeekdayFromDate(req.Date)

	windows, err := uc.scheduleRepo.ListByProfessionalAndWeekday(ctx, req.ProfessionalID, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get working windows: %v", ErrInternal, err)
	}

	// Нет окон на этот день недели - пустой список слотов, не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: no working windows for professional=%d on %s",
			req.ProfessionalID, weekday)
		return &Response{
			Date:           req.Date,
			ProfessionalID: req.ProfessionalID,
			Slots:          []domain.Slot{},
		}, nil
	}

	// 4. Получаем занятость из обоих источников записей (объединение)
	occupied, err := uc.occupancySvc.ListOccupiedTimes(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied times: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied times: %v", ErrInternal, err)
	}

	// 5. Вычисляем слоты дня
	slots := computeSlots(windows, occupied, uc.logger)

	// Уже прошедшее время нельзя забронировать, даже если слот свободен
	now := uc.timeProvider.Now()
	for i := range slots {
		if !isInFuture(req.Date, slots[i].StartTime, now) {
			slots[i].Available = false
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		Slots:          slots,
	}, nil
}
