package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// Service сервис управления недельными расписаниями профессионалов
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	cache        CacheInvalidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
// cache может быть nil, если кеширование выключено
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	cache CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		cache:        cache,
		logger:       logger,
	}
}

// GetWeeklySchedule получает недельное расписание профессионала
// Доступно только самому профессионалу
func (s *Service) GetWeeklySchedule(ctx context.Context, professionalID int64, userID int64) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching schedule for professional=%d, user=%d", professionalID, userID)

	if professionalID != userID {
		s.logger.Warn("GetWeeklySchedule: access denied for user=%d to professional=%d", userID, professionalID)
		return nil, ErrAccessDenied
	}

	windows, err := s.scheduleRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeeklySchedule: successfully fetched %d windows for professional=%d", len(windows), professionalID)
	return models.FromDomainWindows(professionalID, windows), nil
}

// ReplaceWeeklySchedule полностью заменяет недельное расписание профессионала
// Удаление старых окон и вставка новых выполняются в одной транзакции:
// промежуточное состояние с частично записанным расписанием не наблюдаемо.
// Пустой список окон валиден - профессионал закрывает онлайн-запись.
// Уже созданные записи при замене расписания не трогаются.
func (s *Service) ReplaceWeeklySchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("ReplaceWeeklySchedule: replacing schedule for professional=%d, user=%d, windows=%d",
		req.ProfessionalID, req.UserID, len(req.Windows))

	if req.ProfessionalID != req.UserID {
		s.logger.Warn("ReplaceWeeklySchedule: access denied for user=%d to professional=%d", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// Валидируем и конвертируем окна до начала транзакции
	windows, err := s.toDomainWindows(req)
	if err != nil {
		s.logger.Warn("ReplaceWeeklySchedule: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	// Атомарная замена: delete + insert в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.scheduleRepo.DeleteByProfessional(ctx, req.ProfessionalID); err != nil {
			return fmt.Errorf("delete old windows: %w", err)
		}

		for i := range windows {
			if _, err := s.scheduleRepo.Create(ctx, &windows[i]); err != nil {
				return fmt.Errorf("create window %d: %w", i, err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Error("ReplaceWeeklySchedule: transaction failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ReplaceWeeklySchedule - transaction failed: %v", ErrInternal, err)
	}

	// Сбрасываем кеш после успешного коммита
	if s.cache != nil {
		s.cache.Invalidate(ctx, req.ProfessionalID)
	}

	s.logger.Info("ReplaceWeeklySchedule: successfully replaced schedule for professional=%d, windows=%d",
		req.ProfessionalID, len(windows))
	return models.FromDomainWindows(req.ProfessionalID, windows), nil
}

// Вспомогательные методы

// toDomainWindows валидирует запрос и конвертирует окна в domain модели
func (s *Service) toDomainWindows(req *models.ReplaceScheduleRequest) ([]domain.WorkingWindow, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	windows := make([]domain.WorkingWindow, 0, len(req.Windows))
	for i, input := range req.Windows {
		weekday := domain.Weekday(input.Weekday)
		if !weekday.IsValid() {
			return nil, fmt.Errorf("%w: window %d has weekday=%d", ErrInvalidWeekday, i, input.Weekday)
		}

		startTime, err := types.NewTimeStringFromString(input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window %d has invalid startTime: %v", ErrInvalidInput, i, err)
		}

		endTime, err := types.NewTimeStringFromString(input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window %d has invalid endTime: %v", ErrInvalidInput, i, err)
		}

		if !startTime.IsBefore(endTime) {
			return nil, fmt.Errorf("%w: window %d startTime must be before endTime", ErrInvalidTimeRange, i)
		}

		if input.StepMinutes < domain.MinStepMinutes || input.StepMinutes > domain.MaxStepMinutes {
			return nil, fmt.Errorf("%w: window %d stepMinutes=%d, allowed range [%d, %d]",
				ErrInvalidStep, i, input.StepMinutes, domain.MinStepMinutes, domain.MaxStepMinutes)
		}

		windows = append(windows, domain.WorkingWindow{
			ProfessionalID: req.ProfessionalID,
			Weekday:        weekday,
			StartTime:      startTime,
			EndTime:        endTime,
			StepMinutes:    input.StepMinutes,
		})
	}

	return windows, nil
}
