package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMP-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMP-AppointmentService/internal/integrations/profileservice"
	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type appointmentRepoStub struct {
	created   *domain.Appointment
	createErr error
}

func (s *appointmentRepoStub) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = appt
	appt.ID = 42
	appt.CreatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	appt.UpdatedAt = appt.CreatedAt
	return appt, nil
}

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
	professional    *profileservice.Professional
	professionalErr error
	service         *profileservice.Service
	serviceErr      error
}

func (s *profileClientStub) GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error) {
	return s.professional, s.professionalErr
}

func (s *profileClientStub) GetService(ctx context.Context, serviceID int64) (*profileservice.Service, error) {
	return s.service, s.serviceErr
}

type customerRepoStub struct {
	upserted bool
	err      error
}

func (s *customerRepoStub) Upsert(ctx context.Context, professionalID int64, name, phone string) error {
	s.upserted = true
	return s.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// 16 марта 2026 - понедельник
var (
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	appointments *appointmentRepoStub
	schedule     *scheduleRepoStub
	occupancy    *occupancyStub
	profile      *profileClientStub
	customers    *customerRepoStub
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &appointmentRepoStub{},
		schedule: &scheduleRepoStub{
			windows: []domain.WorkingWindow{{
				ProfessionalID: 7,
				Weekday:        domain.Monday,
				StartTime:      "09:00",
				EndTime:        "18:00",
				StepMinutes:    30,
			}},
		},
		occupancy: &occupancyStub{occupied: domain.OccupiedTimes{}},
		profile: &profileClientStub{
			professional: &profileservice.Professional{ID: 7},
			service:      &profileservice.Service{ID: 3, Name: "Haircut", ProfessionalIDs: []int64{7}},
		},
		customers: &customerRepoStub{},
	}

	f.uc = NewUseCase(f.appointments, f.schedule, f.occupancy, f.profile, f.customers, nopLogger{})
	f.uc.timeProvider = &fixedClock{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           testDate,
		StartTime:      "10:00",
		CustomerName:   "Анна Иванова",
		CustomerPhone:  "+79991234567",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.PublicCode)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)

	// Клиент попадает в клиентскую базу профессионала
	assert.True(t, f.customers.upserted)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	t.Run("pre-check rejects an occupied slot without insert", func(t *testing.T) {
		f := newFixture()
		f.occupancy.occupied.Add("10:00")

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotAlreadyBooked)

		// До вставки дело не дошло
		assert.Nil(t, f.appointments.created)
	})

	t.Run("lost insert race maps to the same conflict", func(t *testing.T) {
		// Занятость прочитана до того, как конкурент успел вставить запись:
		// конфликт ловит уникальный индекс на вставке
		f := newFixture()
		f.appointments.createErr = appointmentRepo.ErrSlotTaken

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})
}

func TestExecute_TimeValidation(t *testing.T) {
	t.Run("past time is rejected", func(t *testing.T) {
		f := newFixture()
		f.uc.timeProvider = &fixedClock{now: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)}

		// 10:00 ровно "сейчас" - не строго в будущем
		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrTimeInPast)
	})

	t.Run("time outside working windows is rejected", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.StartTime = "08:00"

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("time off the slot grid is rejected", func(t *testing.T) {
		// Окно с шагом 30 минут не предлагает 10:15
		f := newFixture()

		req := validRequest()
		req.StartTime = "10:15"

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("window end time is not bookable", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.StartTime = "18:00"

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrOutsideWorkingHours)
	})
}

func TestExecute_ProfileChecks(t *testing.T) {
	t.Run("professional not found", func(t *testing.T) {
		f := newFixture()
		f.profile.professionalErr = profileservice.ErrProfessionalNotFound

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		f := newFixture()
		f.profile.serviceErr = profileservice.ErrServiceNotFound

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service offered by another professional", func(t *testing.T) {
		f := newFixture()
		f.profile.service = &profileservice.Service{ID: 3, ProfessionalIDs: []int64{99}}

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrServiceNotOffered)
	})
}

func TestExecute_CustomerUpsertIsBestEffort(t *testing.T) {
	f := newFixture()
	f.customers.err = errors.New("customers table is on vacation")

	// Ошибка пополнения клиентской базы не откатывает созданную запись
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_InputValidation(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.CustomerName = "   "

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing customer phone", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.CustomerPhone = ""

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
