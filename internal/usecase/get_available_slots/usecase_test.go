package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
)

type scheduleRepoStub struct {
	windows []domain.WorkingWindow
	err     error
}

func (s *scheduleRepoStub) ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error) {
	return s.windows, s.err
}

type occupancyStub struct {
	occupied domain.OccupiedTimes
	err      error
}

func (s *occupancyStub) ListOccupiedTimes(ctx context.Context, professionalID int64, date time.Time) (domain.OccupiedTimes, error) {
	return s.occupied, s.err
}

type profileClientStub struct {
	professional *profileservice.Professional
	err          error
}

func (s *profileClientStub) GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error) {
	return s.professional, s.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newTestUseCase(scheduleRepo ScheduleRepository, occupancySvc OccupancyService, client ProfileServiceClient, now time.Time) *UseCase {
	uc := NewUseCase(scheduleRepo, occupancySvc, client, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	// 16 марта 2026 - понедельник
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	professional := &profileservice.Professional{ID: 7}

	t.Run("professional not found", func(t *testing.T) {
		uc := newTestUseCase(
			&scheduleRepoStub{},
			&occupancyStub{},
			&profileClientStub{err: profileservice.ErrProfessionalNotFound},
			past,
		)

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: date})
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("no windows for the weekday yield empty slots", func(t *testing.T) {
		uc := newTestUseCase(
			&scheduleRepoStub{windows: []domain.WorkingWindow{}},
			&occupancyStub{},
			&profileClientStub{professional: professional},
			past,
		)

		resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: date})
		require.NoError(t, err)

		assert.Empty(t, resp.Slots)
		assert.Equal(t, int64(7), resp.ProfessionalID)
	})

	t.Run("booked times are unavailable", func(t *testing.T) {
		occupied := domain.OccupiedTimes{}
		occupied.Add("10:00")

		uc := newTestUseCase(
			&scheduleRepoStub{windows: []domain.WorkingWindow{window("10:00", "11:00", 30)}},
			&occupancyStub{occupied: occupied},
			&profileClientStub{professional: professional},
			past,
		)

		resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: date})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 2)
		assert.False(t, resp.Slots[0].Available)
		assert.True(t, resp.Slots[1].Available)
	})

	t.Run("past times on the requested date are unavailable", func(t *testing.T) {
		// Сейчас 10:15 того же дня: слот 10:00 уже в прошлом
		now := time.Date(2026, 3, 16, 10, 15, 0, 0, time.UTC)

		uc := newTestUseCase(
			&scheduleRepoStub{windows: []domain.WorkingWindow{window("10:00", "11:30", 30)}},
			&occupancyStub{occupied: domain.OccupiedTimes{}},
			&profileClientStub{professional: professional},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 7, Date: date})
		require.NoError(t, err)

		require.Equal(t, []string{"10:00", "10:30", "11:00"}, slotTimes(resp.Slots))
		assert.False(t, resp.Slots[0].Available)
		assert.True(t, resp.Slots[1].Available)
		assert.True(t, resp.Slots[2].Available)
	})

	t.Run("invalid request is rejected", func(t *testing.T) {
		uc := newTestUseCase(
			&scheduleRepoStub{},
			&occupancyStub{},
			&profileClientStub{professional: professional},
			past,
		)

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, Date: date})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
