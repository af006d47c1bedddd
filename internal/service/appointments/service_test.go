package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type repoStub struct {
	appt *domain.Appointment

	cancelled       bool
	cancelledStatus domain.AppointmentStatus
	cancelReason    string

	updatedStatus *domain.AppointmentStatus
}

func (s *repoStub) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if s.appt == nil || s.appt.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return s.appt, nil
}

func (s *repoStub) GetByPublicCode(ctx context.Context, code string) (*domain.Appointment, error) {
	if s.appt == nil || s.appt.PublicCode != code {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return s.appt, nil
}

func (s *repoStub) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	if s.appt == nil {
		return []*domain.Appointment{}, nil
	}
	return []*domain.Appointment{s.appt}, nil
}

func (s *repoStub) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	s.updatedStatus = &status
	return nil
}

func (s *repoStub) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	s.cancelled = true
	s.cancelledStatus = status
	s.cancelReason = reason
	return nil
}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		PublicCode:      "c0de0000-0000-0000-0000-000000000042",
		ProfessionalID:  7,
		ServiceID:       3,
		AppointmentDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Status:          status,
		CustomerName:    "Анна Иванова",
		CustomerPhone:   "+79991234567",
	}
}

func TestGetByID(t *testing.T) {
	t.Run("owner sees the appointment", func(t *testing.T) {
		svc := NewService(&repoStub{appt: testAppointment(domain.StatusPending)}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 42, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("foreign professional is rejected", func(t *testing.T) {
		svc := NewService(&repoStub{appt: testAppointment(domain.StatusPending)}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 42, 8)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing appointment", func(t *testing.T) {
		svc := NewService(&repoStub{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 42, 7)
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("professional cancels with the professional status", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusConfirmed)}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
			UserID:             7,
			CancellationReason: "болею",
		})
		require.NoError(t, err)

		assert.True(t, repo.cancelled)
		assert.Equal(t, domain.StatusCancelledByProfessional, repo.cancelledStatus)
		assert.Equal(t, "болею", repo.cancelReason)
	})

	t.Run("client cancels by public code with the client status", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		err := svc.CancelByPublicCode(context.Background(), repo.appt.PublicCode, "не смогу прийти")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusCompleted)}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
		require.ErrorIs(t, err, ErrCannotCancel)
		assert.False(t, repo.cancelled)
	})

	t.Run("cancel is idempotent conflict-free", func(t *testing.T) {
		// Повторная отмена уже отмененной записи - ошибка, а не тихий успех
		repo := &repoStub{appt: testAppointment(domain.StatusCancelledByClient)}
		svc := NewService(repo, nopLogger{})

		err := svc.CancelByPublicCode(context.Background(), repo.appt.PublicCode, "")
		require.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("allowed transition is applied", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 7,
			Status: "confirmed",
		})
		require.NoError(t, err)

		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	})

	t.Run("forbidden transition is rejected", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 7,
			Status: "completed",
		})
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 7,
			Status: "teleported",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("foreign professional cannot update", func(t *testing.T) {
		repo := &repoStub{appt: testAppointment(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 8,
			Status: "confirmed",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}
