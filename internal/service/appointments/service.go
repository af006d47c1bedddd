package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступно только профессионалу, к которому относится запись
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if appt.ProfessionalID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetByPublicCode получает запись по публичному коду
// Публичная операция: код из подтверждения - единственный ключ клиента
func (s *Service) GetByPublicCode(ctx context.Context, code string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByPublicCode: fetching appointment code=%s", code)

	appt, err := s.appointmentRepo.GetByPublicCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByPublicCode: appointment code=%s not found", code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByPublicCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByPublicCode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPublicCode: successfully fetched appointment id=%d", appt.ID)
	return models.FromDomainAppointment(appt), nil
}

// GetProfessionalAppointments получает записи профессионала с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей
//
// Примеры использования:
// - Все активные записи: только ProfessionalID
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetProfessionalAppointments: fetching appointments for professional=%d, user=%d", req.ProfessionalID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Профессионал видит только собственные записи
	if req.ProfessionalID != req.UserID {
		s.logger.Warn("GetProfessionalAppointments: access denied for user=%d to professional=%d", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: successfully fetched %d appointments for professional=%d", len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись профессионалом (cancelled_by_professional)
// Отменить можно только запись в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	appt, err := s.getAppointment(ctx, appointmentID, "Cancel")
	if err != nil {
		return err
	}

	// Отменять запись может только её профессионал
	if appt.ProfessionalID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return ErrAccessDenied
	}

	return s.cancel(ctx, appt, domain.StatusCancelledByProfessional, req.CancellationReason)
}

// CancelByPublicCode отменяет запись клиентом по публичному коду (cancelled_by_client)
// Публичная операция: владение кодом и есть право на отмену
func (s *Service) CancelByPublicCode(ctx context.Context, code string, reason string) error {
	s.logger.Info("CancelByPublicCode: cancelling appointment code=%s", code)

	appt, err := s.appointmentRepo.GetByPublicCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelByPublicCode: appointment code=%s not found", code)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelByPublicCode: repository error for code=%s: %v", code, err)
		return fmt.Errorf("%w: CancelByPublicCode - repository error: %v", ErrInternal, err)
	}

	return s.cancel(ctx, appt, domain.StatusCancelledByClient, reason)
}

// UpdateStatus обновляет статус записи
// Доступно только профессионалу записи; переход валидируется машиной статусов
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	appt, err := s.getAppointment(ctx, appointmentID, "UpdateStatus")
	if err != nil {
		return err
	}

	// Проверяем права доступа
	if appt.ProfessionalID != req.UserID {
		s.logger.Warn("UpdateStatus: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return ErrAccessDenied
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Проверяем допустимость перехода
	if !appt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// getAppointment получает запись по ID с трансляцией ошибок репозитория
func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// cancel выполняет отмену с общей проверкой отменяемости
func (s *Service) cancel(ctx context.Context, appt *domain.Appointment, status domain.AppointmentStatus, reason string) error {
	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("cancel: appointment id=%d cannot be cancelled, status=%s", appt.ID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appt.ID, status, reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("cancel: appointment id=%d not found during cancellation", appt.ID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("cancel: repository error for appointment id=%d: %v", appt.ID, err)
		return fmt.Errorf("%w: cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("cancel: successfully cancelled appointment id=%d with status=%s", appt.ID, status)
	return nil
}
